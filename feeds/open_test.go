package feeds

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/linecast/modes"
)

func TestOpenInputFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte("a:1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*fileFlag = path
	t.Cleanup(func() {
		*fileFlag = ""
	})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		openInput OpenInput,
	) {
		input, name, err := openInput()
		if err != nil {
			t.Fatal(err)
		}
		defer input.Close()
		if name != path {
			t.Fatalf("got %q", name)
		}
		content, err := io.ReadAll(input)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "a:1\n" {
			t.Fatalf("got %q", content)
		}
	})
}

func TestOpenInputMissingFile(t *testing.T) {
	*fileFlag = filepath.Join(t.TempDir(), "absent.txt")
	t.Cleanup(func() {
		*fileFlag = ""
	})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		openInput OpenInput,
	) {
		if _, _, err := openInput(); err == nil {
			t.Fatal("should error")
		}
	})
}
