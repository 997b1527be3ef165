package magetasks

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinters_WriteToOut(t *testing.T) {
	var buf bytes.Buffer
	old := Out
	Out = &buf
	t.Cleanup(func() { Out = old })

	PrintH1Header("Title")
	PrintH2Header("Section")
	PrintSuccess("done")
	PrintWarning("careful")
	PrintError("broken")

	out := buf.String()
	for _, want := range []string{"Title", "=== Section ===", "done", "careful", "broken"} {
		assert.Contains(t, out, want)
	}
}
