package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"cleave/internal/logging"
)

// Generation parameters mirror the analyzer defaults: low temperature for
// stable tabular output, plain-text responses.
const (
	generationTemperature     = 0.1
	generationTopP            = 0.95
	generationTopK            = 40
	generationMaxOutputTokens = 8192
)

// Config captures the runtime settings required to talk to Gemini.
type Config struct {
	APIKey        string
	Model         string
	Prompt        string
	UploadTimeout time.Duration
	PollInterval  time.Duration
}

// Client analyzes videos through the Gemini Files and GenerateContent APIs.
type Client struct {
	cfg    Config
	genai  *genai.Client
	logger *slog.Logger
}

// NewClient constructs a Gemini analyzer using the supplied configuration.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: api key required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("gemini: model required")
	}
	if strings.TrimSpace(cfg.Prompt) == "" {
		return nil, errors.New("gemini: prompt required")
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = 10 * time.Minute
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{
		cfg:    cfg,
		genai:  client,
		logger: logging.NewComponentLogger(logger, "gemini"),
	}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c == nil || c.genai == nil {
		return nil
	}
	return c.genai.Close()
}

// Analyze uploads the video, waits for it to become usable, and asks the
// model for the segment table. The uploaded file is deleted afterwards on a
// best-effort basis; deletion failures are logged and swallowed.
func (c *Client) Analyze(ctx context.Context, videoPath string) (string, error) {
	file, err := c.upload(ctx, videoPath)
	if err != nil {
		return "", err
	}
	defer c.cleanup(file)

	model := c.genai.GenerativeModel(c.cfg.Model)
	model.SetTemperature(generationTemperature)
	model.SetTopP(generationTopP)
	model.SetTopK(generationTopK)
	model.SetMaxOutputTokens(generationMaxOutputTokens)
	model.ResponseMIMEType = "text/plain"

	c.logger.Info("analyzing video", logging.String("model", c.cfg.Model), logging.String("file", file.Name))
	resp, err := model.GenerateContent(ctx,
		genai.FileData{MIMEType: file.MIMEType, URI: file.URI},
		genai.Text(c.cfg.Prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) upload(ctx context.Context, videoPath string) (*genai.File, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, c.cfg.UploadTimeout)
	defer cancel()

	c.logger.Info("uploading video", logging.String("path", videoPath))
	file, err := c.genai.UploadFileFromPath(uploadCtx, videoPath, &genai.UploadFileOptions{
		MIMEType: MIMETypeForPath(videoPath),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: upload %s: %w", videoPath, err)
	}

	// The Files API processes video asynchronously; generation requests
	// fail until the file reaches ACTIVE.
	for file.State == genai.FileStateProcessing {
		select {
		case <-uploadCtx.Done():
			c.cleanup(file)
			return nil, fmt.Errorf("gemini: wait for file %s: %w", file.Name, uploadCtx.Err())
		case <-time.After(c.cfg.PollInterval):
		}
		file, err = c.genai.GetFile(uploadCtx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("gemini: poll file state: %w", err)
		}
	}
	if file.State != genai.FileStateActive {
		c.cleanup(file)
		return nil, fmt.Errorf("gemini: file %s entered state %v", file.Name, file.State)
	}
	return file, nil
}

func (c *Client) cleanup(file *genai.File) {
	if file == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.genai.DeleteFile(ctx, file.Name); err != nil {
		c.logger.Warn("failed to delete uploaded file", logging.String("file", file.Name), logging.Error(err))
		return
	}
	c.logger.Debug("uploaded file deleted", logging.String("file", file.Name))
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: empty response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("gemini: response has no content")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("gemini: response has no text parts")
	}
	return strings.Join(parts, ""), nil
}

var mimeByExtension = map[string]string{
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".wmv":  "video/x-ms-wmv",
	".3gp":  "video/3gpp",
}

// MIMETypeForPath resolves the upload MIME type from the file extension,
// defaulting to video/mp4 when the extension is unknown.
func MIMETypeForPath(path string) string {
	if t, ok := mimeByExtension[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return "video/mp4"
}
