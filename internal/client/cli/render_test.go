package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/syncer"
)

// capturePrintln redirects printlnFn into a buffer for the duration of a test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func joined(lines *[]string) string {
	return strings.Join(*lines, "")
}

func TestRender_Synced(t *testing.T) {
	lines := capturePrintln(t)
	a := &App{}

	a.render(syncer.Result{
		Status: syncer.StatusSynced,
		Users: []models.User{
			{ID: "1", Name: "Ana", Email: "ana@example.com", Phone: "555-0101"},
			{ID: "2", Name: "Bo", Email: "bo@example.com"},
		},
	})

	out := joined(lines)
	assert.Equal(t, syncer.StatusSynced, a.lastStatus)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "incomplete")
	assert.Contains(t, out, "2 user(s)")
}

func TestRender_Degraded_AnnouncesLocalCopy(t *testing.T) {
	lines := capturePrintln(t)
	a := &App{}

	a.render(syncer.Result{
		Status: syncer.StatusDegraded,
		Users:  []models.User{{ID: "1", Name: "Ana", Email: "ana@example.com"}},
	})

	out := joined(lines)
	assert.Contains(t, out, "local copy")
	assert.Contains(t, out, "Ana")
}

func TestRender_Unavailable(t *testing.T) {
	lines := capturePrintln(t)
	a := &App{}

	a.render(syncer.Result{Status: syncer.StatusUnavailable})

	out := joined(lines)
	assert.Contains(t, out, "no local data")
	assert.NotContains(t, out, "user(s)")
}

func TestRender_Rejected_ShowsServerMessage(t *testing.T) {
	lines := capturePrintln(t)
	a := &App{}

	a.render(syncer.Result{Status: syncer.StatusRejected, Message: "email already taken"})

	assert.Contains(t, joined(lines), "email already taken")
}

func TestGetStatus(t *testing.T) {
	a := &App{}
	assert.Equal(t, "", a.getStatus())

	a.lastStatus = syncer.StatusDegraded
	assert.Equal(t, "(degraded) ", a.getStatus())
}
