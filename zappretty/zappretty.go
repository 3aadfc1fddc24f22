// Package zappretty is a colored, human-readable zapcore.Encoder. The entry
// header (time, level, logger, caller, message) is rendered as plain colored
// text and structured fields follow as a compact JSON object.
package zappretty

import (
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02 15:04:05 MST"

var (
	bufPool    = buffer.NewPool()
	levelColor = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the encoder available to zap.Config under the name "cli".
func Register(cfg zapcore.EncoderConfig) error {
	return zap.RegisterEncoder("cli", func(_ zapcore.EncoderConfig) (zapcore.Encoder, error) {
		return NewCLIEncoder(cfg), nil
	})
}

// NewLogger returns a logger writing colored entries at or above level to ws.
func NewLogger(ws zapcore.WriteSyncer, level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(NewCLIEncoder(zap.NewDevelopmentEncoderConfig()), ws, level)
	return zap.New(core, zap.AddCaller())
}

type cliEncoder struct {
	// Collects context fields and renders them as JSON.
	zapcore.Encoder

	cfg *zapcore.EncoderConfig
}

func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	// Only the fields go through the JSON encoder; every entry key is left
	// blank so it emits nothing else.
	fields := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		SkipLineEnding:      true,
		EncodeTime:          cfg.EncodeTime,
		EncodeDuration:      cfg.EncodeDuration,
		NewReflectedEncoder: cfg.NewReflectedEncoder,
	})

	return &cliEncoder{
		Encoder: fields,
		cfg:     &cfg,
	}
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
		cfg:     enc.cfg,
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufPool.Get()

	if enc.cfg.TimeKey != "" {
		encodeTimestamp(line, entry.Time)
	}

	if enc.cfg.LevelKey != "" {
		encodeLevel(line, entry.Level)
	}

	if entry.LoggerName != "" && enc.cfg.NameKey != "" {
		encodeLoggerName(line, entry.LoggerName)
	}

	if entry.Caller.Defined && enc.cfg.CallerKey != "" {
		encodeCaller(line, entry.Caller)
	}

	if enc.cfg.MessageKey != "" {
		encodeMessage(line, entry.Message)
	}

	ctx, err := enc.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		line.Free()
		return nil, err
	}

	// An empty object is just "{}".
	if ctx.Len() > 2 {
		line.AppendString(colorize(ctx.String(), color.FgCyan))
		line.AppendByte(' ')
	}
	ctx.Free()

	if entry.Stack != "" && enc.cfg.StacktraceKey != "" {
		line.AppendByte('\n')
		line.AppendString(color.New(color.FgHiBlack).Sprint(entry.Stack))
	}

	line.AppendString(enc.cfg.LineEnding)

	return line, nil
}

func encodeTimestamp(buf *buffer.Buffer, timestamp time.Time) {
	buf.AppendString(color.New(color.FgWhite).Sprintf("[%s]", timestamp.Format(timeFormat)))
	buf.AppendByte(' ')
}

func encodeLevel(buf *buffer.Buffer, level zapcore.Level) {
	// Pad to the width of the longest common level name.
	name := level.CapitalString()
	if level == zapcore.InfoLevel || level == zapcore.WarnLevel {
		name += " "
	}

	buf.AppendString(color.New(levelColor[level]).Sprint(name))
	buf.AppendByte(' ')
}

func encodeLoggerName(buf *buffer.Buffer, logger string) {
	buf.AppendString(color.New(color.FgHiBlack).Sprint(logger))
	buf.AppendByte(' ')
}

func encodeCaller(buf *buffer.Buffer, caller zapcore.EntryCaller) {
	buf.AppendString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
	buf.AppendByte(' ')
}

func encodeMessage(buf *buffer.Buffer, message string) {
	buf.AppendString(color.New(color.FgHiWhite).Sprint(message))
	buf.AppendByte(' ')
}

func colorize(arg any, attributes ...color.Attribute) string {
	return color.New(attributes...).Sprint(arg)
}
