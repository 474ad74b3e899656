package loopscroll_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/CanonicalLtd/loopscroll"
	"github.com/CanonicalLtd/loopscroll/internal/strip"
	"github.com/hashicorp/logutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelFilterWithOrigin_Write(t *testing.T) {
	writer := bytes.NewBuffer(nil)
	filter := &loopscroll.LevelFilterWithOrigin{}
	filter.Writer = writer
	filter.Levels = []logutils.LogLevel{"DEBUG", "INFO"}
	filter.MinLevel = "INFO"
	filter.Origins = []string{"foo"}

	cases := []struct {
		origins []string
		message string
		written bool
	}{
		{[]string{"foo"}, "[INFO] foo: hello", true},
		{[]string{"foo"}, "[DEBUG] foo: hello", false},
		{[]string{"foo"}, "[INFO] bar: hello", false},
		{[]string{"foo"}, "foo: hello", true},
		{[]string{"foo"}, "hello", true},
		{nil, "[INFO] bar: hello", true},
		{[]string{"foo"}, "2026/10/17 12:00:00 [INFO] foo: hello", true},
		{[]string{"foo"}, "2026/10/17 12:00:00 [INFO] bar: hello", false},
	}

	for _, c := range cases {
		t.Run(c.message, func(t *testing.T) {
			defer writer.Reset()
			filter.SetOrigins(c.origins)

			filter.Write([]byte(c.message))

			want := ""
			if c.written {
				want = c.message
			}
			if got := writer.String(); got != want {
				t.Errorf("got %#v, wanted %#v", got, want)
			}
		})
	}
}

// The stdlib logger filters controller messages by level.
func TestNewLogger(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	logger := loopscroll.NewLogger(buffer, "debug", 0)

	s := strip.Uniform(loopscroll.Horizontal, 5, 100, 250, 0)
	_, err := loopscroll.New[*strip.Item](s, s, loopscroll.StdLogger(logger), loopscroll.LogLevel("TRACE"))
	require.NoError(t, err)

	assert.Equal(t, "[DEBUG] loopscroll: refreshed 5 items along horizontal axis\n", buffer.String())

	buffer.Reset()
	logger.Printf("[TRACE] loopscroll: hidden")
	assert.Equal(t, "", buffer.String())
}

// The stdlib logger drops controller messages unless their origin is
// retained.
func TestNewLogger_Origins(t *testing.T) {
	cases := []struct {
		origins []string
		written bool
	}{
		{nil, true},
		{[]string{"loopscroll"}, true},
		{[]string{"other"}, false},
		{[]string{"other", "loopscroll"}, true},
	}
	for _, c := range cases {
		t.Run(strings.Join(c.origins, ","), func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)
			logger := loopscroll.NewLogger(buffer, "DEBUG", log.LstdFlags, c.origins...)

			s := strip.Uniform(loopscroll.Horizontal, 5, 100, 250, 0)
			_, err := loopscroll.New[*strip.Item](s, s, loopscroll.StdLogger(logger), loopscroll.LogLevel("DEBUG"))
			require.NoError(t, err)

			if c.written {
				assert.Contains(t, buffer.String(), " [DEBUG] loopscroll: refreshed 5 items")
			} else {
				assert.Equal(t, "", buffer.String())
			}
		})
	}
}

func TestNewZapLogger(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	logger := loopscroll.NewZapLogger(buffer, zapcore.DebugLevel)

	s := strip.Uniform(loopscroll.Horizontal, 5, 100, 250, 0)
	c, err := loopscroll.New[*strip.Item](s, s, loopscroll.ZapLogger(logger), loopscroll.LogLevel("TRACE"))
	require.NoError(t, err)
	c.ScrollBy(-450)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "DEBUG\tloopscroll\tloopscroll: refreshed 5 items")
	assert.Contains(t, lines[1], "loopscroll: wrap: ")
	assert.Contains(t, lines[1], `{"trace": true}`)
}
