package prompt

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIsYes(t *testing.T) {
	for _, answer := range []string{"yes", "y", "Y", "YES", "Yes", " y\n"} {
		qt.Check(t, IsYes(answer), qt.IsTrue, qt.Commentf("answer %q", answer))
	}
	for _, answer := range []string{"", "n", "no", "yep", "yess", "ye", "true", "1"} {
		qt.Check(t, IsYes(answer), qt.IsFalse, qt.Commentf("answer %q", answer))
	}
}

func TestLineConfirm(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("Yes\nnope\n"), &out)
	qt.Assert(t, p.Confirm("install? "), qt.IsTrue)
	qt.Assert(t, p.Confirm("again? "), qt.IsFalse)
	qt.Assert(t, out.String(), qt.Equals, "install? again? ")
}

func TestLineEOFDeclines(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader(""), &out)
	qt.Assert(t, p.Confirm("install? "), qt.IsFalse)
}

func TestLineLastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("y"), &out)
	qt.Assert(t, p.Confirm("install? "), qt.IsTrue)
}

func TestScripted(t *testing.T) {
	s := &Scripted{Answers: []string{"y", "my-project"}}
	qt.Assert(t, s.Confirm("first"), qt.IsTrue)
	qt.Assert(t, s.Ask("second"), qt.Equals, "my-project")
	qt.Assert(t, s.Confirm("third"), qt.IsFalse)
	qt.Assert(t, s.Asked, qt.DeepEquals, []string{"first", "second", "third"})
}
