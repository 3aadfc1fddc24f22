package zappretty

import (
	"fmt"
	"testing"
	"time"

	gofuzz "github.com/google/gofuzz"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

var (
	epoch     = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	testcases = []struct {
		name   string
		entry  zapcore.Entry
		fields []zapcore.Field
		want   string
	}{
		{
			name: "info with caller",
			entry: zapcore.Entry{
				Level:      zapcore.InfoLevel,
				Time:       epoch,
				LoggerName: "main",
				Message:    "hello world",
				Caller: zapcore.EntryCaller{
					Defined:  true,
					File:     "foo.go",
					Line:     42,
					Function: "foo.Bar",
				},
				Stack: "foo",
			},
			want: fmt.Sprintf("\x1b[37m[%s]\x1b[0m \x1b[32mINFO \x1b[0m \x1b[90mmain\x1b[0m \x1b[90m(foo.go:42)\x1b[0m \x1b[97mhello world\x1b[0m \n", epoch.Format(timeFormat)),
		},
		{
			name: "debug with fields",
			entry: zapcore.Entry{
				Level:      zapcore.DebugLevel,
				Time:       epoch,
				LoggerName: "arraybox",
				Message:    "reset integers",
			},
			fields: []zapcore.Field{zap.Int("length", 3), zap.String("source", "floats")},
			want:   fmt.Sprintf("\x1b[37m[%s]\x1b[0m \x1b[34mDEBUG\x1b[0m \x1b[90marraybox\x1b[0m \x1b[97mreset integers\x1b[0m \x1b[36m{\"length\":3,\"source\":\"floats\"}\x1b[0m \n", epoch.Format(timeFormat)),
		},
	}
)

func TestMain(m *testing.M) {
	color.NoColor = false
	goleak.VerifyTestMain(m)
}

func testEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:    "T",
		LevelKey:   "L",
		NameKey:    "N",
		CallerKey:  "C",
		MessageKey: "M",
	}
}

func TestPrettyOutput(t *testing.T) {
	for _, tc := range testcases {
		encoder := NewCLIEncoder(testEncoderConfig())

		t.Run(tc.name, func(t *testing.T) {
			out, err := encoder.EncodeEntry(tc.entry, tc.fields)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, out.String(), "Unexpected output")
		})
	}
}

func TestCloneKeepsContext(t *testing.T) {
	encoder := NewCLIEncoder(zapcore.EncoderConfig{MessageKey: "M"})
	encoder.AddString("box", "listbox")

	clone := encoder.Clone()
	clone.AddInt("n", 1)

	out, err := clone.EncodeEntry(zapcore.Entry{Message: "m"}, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `{"box":"listbox","n":1}`)

	out, err = encoder.EncodeEntry(zapcore.Entry{Message: "m"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), `"n":1`)
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register(zap.NewProductionEncoderConfig()))
	assert.Error(t, Register(zap.NewProductionEncoderConfig()), "registering twice")
}

func TestFuzzLog(t *testing.T) {
	buf := &zaptest.Buffer{}
	logger := NewLogger(buf, zapcore.DebugLevel).Named("zappretty")
	defer logger.Sync()

	f := gofuzz.New()

	for i := 0; i < 1000; i++ {
		var s string

		f.Fuzz(&s)
		logger.Info(s, zap.String("fuzzed", s))
	}

	assert.NotEmpty(t, buf.String())
}
