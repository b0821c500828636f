package icconfigs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/amps"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/inputs"
	"github.com/reusee/intcode/modes"
)

func TestConfigsLoaderDevelopment(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "intcode.cue"), []byte("feedback: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
	) {
		if paths := loader.Paths(); len(paths) != 0 {
			t.Fatalf("got %v", paths)
		}
	})
}

func TestDiscover(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	for _, path := range []string{
		filepath.Join(dir1, ".intcode.cue"),
		filepath.Join(dir2, "intcode.cue"),
		filepath.Join(dir2, ".intcode.cue"),
	} {
		if err := os.WriteFile(path, []byte("parallel: 2\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	paths := discover([]string{dir1, dir2, filepath.Join(dir1, "missing")})
	if !slices.Equal(paths, []string{
		filepath.Join(dir1, ".intcode.cue"),
		filepath.Join(dir2, "intcode.cue"),
		filepath.Join(dir2, ".intcode.cue"),
	}) {
		t.Fatalf("got %v", paths)
	}
}

func TestSchema(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	good := write("good.cue", `
feedback: true
threaded: false
parallel: 4
phases: [5, 6, 7, 8, 9]
program: "day7.intcode"
session: "foo"
proxy_addr: "socks5://127.0.0.1:1080"
fetch_timeout: 10
`)
	loader := configs.NewLoader([]string{good}, schema)
	if n := configs.First[int](loader, "parallel"); n != 4 {
		t.Fatalf("got %d", n)
	}

	for _, content := range []string{
		"parallel: 0\n",
		"feedback: 1\n",
		"max_tokens: 1\n",
	} {
		bad := write("bad.cue", content)
		loader := configs.NewLoader([]string{bad}, schema)
		var n int
		if err := loader.AssignFirst("parallel", &n); err == nil {
			t.Fatalf("should fail: %s", content)
		}
	}
}

type testModule struct {
	dscope.Module
	Amps    amps.Module
	Inputs  inputs.Module
	Configs Module
}

func TestKeysMatchSchema(t *testing.T) {
	scope := dscope.New(
		modes.ForTest(t),
		new(testModule),
	)
	var loader configs.Loader
	scope.Call(func(l configs.Loader) {
		loader = l
	})
	keys, err := Keys(scope, loader)
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, key := range keys {
		paths = append(paths, key.Path)
		if len(key.Values) != 0 {
			t.Fatalf("got %v", key.Values)
		}
		if !strings.Contains(schema, key.Path+"?:") {
			t.Fatalf("%s not in schema", key.Path)
		}
	}
	if !slices.Equal(paths, []string{
		"feedback",
		"fetch_timeout",
		"parallel",
		"phases",
		"program",
		"proxy_addr",
		"session",
		"threaded",
	}) {
		t.Fatalf("got %v", paths)
	}
}

func TestKeysValues(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "local.cue")
	if err := os.WriteFile(local, []byte("parallel: 2\nfeedback: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	system := filepath.Join(dir, "system.cue")
	if err := os.WriteFile(system, []byte("parallel: 8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loader := configs.NewLoader([]string{local, system}, schema)

	scope := dscope.New(
		modes.ForTest(t),
		new(testModule),
	)
	keys, err := Keys(scope, loader)
	if err != nil {
		t.Fatal(err)
	}
	values := make(map[string]string)
	for _, key := range keys {
		values[key.Path] = fmt.Sprint(key.Values)
	}
	if values["parallel"] != "[2 8]" {
		t.Fatalf("got %v", values["parallel"])
	}
	if values["feedback"] != "[true]" {
		t.Fatalf("got %v", values["feedback"])
	}
	if values["phases"] != "[]" {
		t.Fatalf("got %v", values["phases"])
	}
}
