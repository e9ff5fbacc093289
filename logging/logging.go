// Package logging provides the structured, leveled logger used across this
// module in place of the teacher repo's bare log.Println calls.
package logging

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.TraceLevel)
	l.SetFormatter(&componentFormatter{})
	return l
}

// For returns a logger entry tagged with the calling component's name
// ("txp", "store", "verify", ...), so log lines can be filtered per
// subsystem without every call site repeating the tag.
func For(component string) *logrus.Entry {
	return base.WithField("component", component)
}

type componentFormatter struct{}

func (f *componentFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Time.Format("2006-01-02T15:04:05.000Z07:00"))
	b.WriteString(" [" + entry.Level.String() + "] ")
	if c, ok := entry.Data["component"].(string); ok {
		b.WriteString(fmt.Sprintf("%s: ", c))
	}
	b.WriteString(entry.Message)
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Data[k]))
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
