// Command gen-golden regenerates the terminal goldens under testdata.
//
// Every testdata/*.txt source is rendered with the boring theme at each
// width that already has a golden, or at the default widths when none do.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"pkt.systems/dotfmt"
)

var defaultWidths = []int{40, 60}

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	sources, widthsByBase, err := scan(root)
	if err != nil {
		fatalf("scan %s: %v", root, err)
	}
	if len(sources) == 0 {
		fatalf("no .txt sources found under %s", root)
	}
	for _, path := range sources {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		base := strings.TrimSuffix(filepath.Base(path), ".txt")
		widths := widthsByBase[base]
		if len(widths) == 0 {
			widths = defaultWidths
		}
		for _, width := range widths {
			var out bytes.Buffer
			err := dotfmt.Render(dotfmt.RenderRequest{
				Reader: bytes.NewReader(src),
				Writer: &out,
				Width:  width,
				Theme:  dotfmt.BoringTheme(),
			})
			if err != nil {
				fatalf("render %s width %d: %v", path, width, err)
			}
			goldenPath := filepath.Join(root, fmt.Sprintf("%s.w%d.golden", base, width))
			if err := os.WriteFile(goldenPath, out.Bytes(), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func scan(root string) ([]string, map[string][]int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, err
	}
	var sources []string
	widths := map[string][]int{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".txt"):
			sources = append(sources, filepath.Join(root, name))
		case strings.HasSuffix(name, ".golden"):
			if base, width, ok := parseGoldenWidth(name); ok {
				widths[base] = append(widths[base], width)
			}
		}
	}
	for base := range widths {
		slices.Sort(widths[base])
	}
	return sources, widths, nil
}

func parseGoldenWidth(name string) (string, int, bool) {
	name = strings.TrimSuffix(name, ".golden")
	idx := strings.LastIndex(name, ".w")
	if idx == -1 {
		return "", 0, false
	}
	width, err := strconv.Atoi(name[idx+2:])
	if err != nil || width <= 0 {
		return "", 0, false
	}
	return name[:idx], width, true
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
