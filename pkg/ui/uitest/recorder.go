// Package uitest provides a recording UI implementation for tests.
// Notifications are captured in emission order so tests can assert on
// both content and sequencing without a terminal.
package uitest

import (
	"github.com/modrun-cli/modrun/pkg/ui"
)

// Notification kinds recorded by the Recorder.
const (
	KindHeader  = "header"
	KindInfo    = "info"
	KindError   = "error"
	KindSuccess = "success"
	KindFatal   = "fatal"
)

// Event is one recorded notification.
type Event struct {
	Kind string
	Text string
}

// Recorder implements ui.UI, capturing every notification and task.
type Recorder struct {
	Events []Event
	Tasks  []*RecordedTask
}

var _ ui.UI = (*Recorder)(nil)

func (r *Recorder) Header(text string) { r.record(KindHeader, text) }
func (r *Recorder) Info(msg string)    { r.record(KindInfo, msg) }
func (r *Recorder) Error(msg string)   { r.record(KindError, msg) }
func (r *Recorder) Success(msg string) { r.record(KindSuccess, msg) }
func (r *Recorder) Fatal(msg string)   { r.record(KindFatal, msg) }

// StartTask records a new task and returns its handle.
func (r *Recorder) StartTask(description string) ui.Task {
	task := &RecordedTask{Description: description}
	r.Tasks = append(r.Tasks, task)
	return task
}

func (r *Recorder) record(kind, text string) {
	r.Events = append(r.Events, Event{Kind: kind, Text: text})
}

// Kinds returns the notification kinds in emission order.
func (r *Recorder) Kinds() []string {
	kinds := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Texts returns the texts of all notifications of the given kind, in
// emission order.
func (r *Recorder) Texts(kind string) []string {
	var texts []string
	for _, e := range r.Events {
		if e.Kind == kind {
			texts = append(texts, e.Text)
		}
	}
	return texts
}

// RecordedTask captures progress updates for assertions.
type RecordedTask struct {
	Description string
	Updates     []int
	Completed   bool
}

func (t *RecordedTask) Progress(completed int) {
	if completed < 0 {
		completed = 0
	}
	if completed > 100 {
		completed = 100
	}
	t.Updates = append(t.Updates, completed)
}

func (t *RecordedTask) Done() {
	t.Completed = true
}
