package inputs

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/modes"
)

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(defs...)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.intcode")
	if err := os.WriteFile(path, []byte("1,0,0,0,\n99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	newScope(t).Call(func(
		load LoadProgram,
	) {
		program, err := load(context.Background(), Source(path))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(program, []int{1, 0, 0, 0, 99}) {
			t.Fatalf("got %v", program)
		}

		_, err = load(context.Background(), Source(filepath.Join(t.TempDir(), "missing")))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadStdin(t *testing.T) {
	newScope(t,
		func() Stdin {
			return strings.NewReader("3,0,4,0,99")
		},
	).Call(func(
		load LoadProgram,
		source Source,
	) {
		if source != "-" {
			t.Fatalf("got %q", source)
		}
		program, err := load(context.Background(), source)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(program, []int{3, 0, 4, 0, 99}) {
			t.Fatalf("got %v", program)
		}
	})
}

func TestLoadURL(t *testing.T) {
	t.Setenv("AOC_SESSION", "")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "foo" {
			http.Error(w, "no session", http.StatusBadRequest)
			return
		}
		w.Write([]byte("1101,1,2,0,99\n"))
	}))
	defer server.Close()

	newScope(t,
		func() Session {
			return "foo"
		},
	).Call(func(
		load LoadProgram,
	) {
		program, err := load(context.Background(), Source(server.URL))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(program, []int{1101, 1, 2, 0, 99}) {
			t.Fatalf("got %v", program)
		}
	})

	newScope(t).Call(func(
		load LoadProgram,
	) {
		_, err := load(context.Background(), Source(server.URL))
		if err == nil || !strings.Contains(err.Error(), "400") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadMalformed(t *testing.T) {
	newScope(t,
		func() Stdin {
			return strings.NewReader("1,x,3")
		},
	).Call(func(
		load LoadProgram,
	) {
		_, err := load(context.Background(), "-")
		if err == nil || !strings.Contains(err.Error(), "field 1") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadEmpty(t *testing.T) {
	newScope(t,
		func() Stdin {
			return strings.NewReader("\n")
		},
	).Call(func(
		load LoadProgram,
	) {
		if _, err := load(context.Background(), "-"); !errors.Is(err, ErrEmptyProgram) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestSourceFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intcode.cue")
	if err := os.WriteFile(path, []byte(`program: "day7.intcode"`+"\n"+`session: "bar"`), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader([]string{path}, "")),
	).Call(func(
		source Source,
		session Session,
	) {
		if source != "day7.intcode" {
			t.Fatalf("got %q", source)
		}
		if session != "bar" {
			t.Fatalf("got %q", session)
		}
	})
}
