package config

const (
	defaultOutputDir            = "~/Videos/cleave"
	defaultLogDir               = "~/.local/share/cleave/logs"
	defaultGeminiModel          = "gemini-2.5-flash"
	defaultUploadTimeoutSeconds = 600
	defaultPollIntervalSeconds  = 5
	defaultClipExtension        = "mp4"
	defaultClipParallel         = 1
	defaultFFmpegBinary         = "ffmpeg"
	defaultCutTimeoutSeconds    = 300
	defaultLogFormat            = ""
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Gemini: Gemini{
			Model:                defaultGeminiModel,
			UploadTimeoutSeconds: defaultUploadTimeoutSeconds,
			PollIntervalSeconds:  defaultPollIntervalSeconds,
		},
		Clips: Clips{
			Extension: defaultClipExtension,
			Parallel:  defaultClipParallel,
		},
		FFmpeg: FFmpeg{
			Binary:            defaultFFmpegBinary,
			CutTimeoutSeconds: defaultCutTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
