// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package observer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticState string

func (s staticState) State() string { return string(s) }

func TestNewNamedObserver(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the subject is nil", func(t *testing.T) {
			o, err := NewNamedObserver("Observer 1", nil)
			assert.Nil(t, o)

			var nerr NilSubjectError
			if !assert.ErrorAs(t, err, &nerr) {
				return
			}
			assert.Equal(t, "Observer 1", nerr.Name)
			assert.NotEmpty(t, nerr.Error())
		})
	})

	t.Run("will default to stdout", func(t *testing.T) {
		t.Run("if no output is configured", func(t *testing.T) {
			o, err := NewNamedObserver("Observer 1", staticState(""))
			require.Nil(t, err)
			assert.Equal(t, os.Stdout, o.out)
		})

		t.Run("if a nil output is configured", func(t *testing.T) {
			o, err := NewNamedObserver("Observer 1", staticState(""), Output(nil))
			require.Nil(t, err)
			assert.Equal(t, os.Stdout, o.out)
		})
	})
}

func TestNamedObserver_Update(t *testing.T) {
	t.Run("will pull the state from its subject", func(t *testing.T) {
		var buf bytes.Buffer
		o, err := NewNamedObserver("Observer 1", staticState("New state"), Output(&buf))
		require.Nil(t, err)

		o.Update()

		assert.Equal(t, "Observer 1", o.Name())
		assert.Equal(t, "New state", o.LastState())
		assert.Equal(t, "Observer 1's new state is New state\n", buf.String())
	})

	t.Run("will print one line per update", func(t *testing.T) {
		var buf bytes.Buffer
		o, err := NewNamedObserver("a", staticState("b"), Output(&buf))
		require.Nil(t, err)

		o.Update()
		o.Update()

		assert.Equal(t, "a's new state is b\na's new state is b\n", buf.String())
	})
}

func TestNamedObserver_logging(t *testing.T) {
	t.Run("will log the observed state with its name", func(t *testing.T) {
		t.Run("if a log handler is configured", func(t *testing.T) {
			var logs bytes.Buffer
			h := slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})

			var out bytes.Buffer
			o, err := NewNamedObserver("Observer 1", staticState("New state"), Output(&out), LogHandler(h))
			require.Nil(t, err)

			o.Update()

			var record map[string]any
			require.Nil(t, json.Unmarshal(logs.Bytes(), &record))
			assert.Equal(t, "observed new state", record["msg"])
			assert.Equal(t, "Observer 1", record["observer_name"])
			assert.Equal(t, "New state", record["state"])
			assert.Equal(t, "Observer 1's new state is New state\n", out.String())
		})
	})
}
