package gemini

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClientValidatesConfig(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, Config{Model: "gemini-2.5-flash", Prompt: "p"}, nil)
	assert.ErrorContains(t, err, "api key")

	_, err = NewClient(ctx, Config{APIKey: "k", Prompt: "p"}, nil)
	assert.ErrorContains(t, err, "model")

	_, err = NewClient(ctx, Config{APIKey: "k", Model: "gemini-2.5-flash"}, nil)
	assert.ErrorContains(t, err, "prompt")
}

func TestNewClientAppliesDefaults(t *testing.T) {
	client, err := NewClient(context.Background(), Config{
		APIKey: "k",
		Model:  "gemini-2.5-flash",
		Prompt: "p",
	}, nil)
	assert.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 10*time.Minute, client.cfg.UploadTimeout)
	assert.Equal(t, 5*time.Second, client.cfg.PollInterval)
}

func TestMIMETypeForPath(t *testing.T) {
	assert.Equal(t, "video/mp4", MIMETypeForPath("/videos/match.mp4"))
	assert.Equal(t, "video/webm", MIMETypeForPath("/videos/clip.WEBM"))
	assert.Equal(t, "video/mp4", MIMETypeForPath("/videos/notes.txt"))
}

func TestSupportedVideo(t *testing.T) {
	assert.True(t, SupportedVideo("/v/a.mp4"))
	assert.True(t, SupportedVideo("/v/a.MOV"))
	assert.False(t, SupportedVideo("/v/a.mkv"))
	assert.False(t, SupportedVideo("/v/a"))
}
