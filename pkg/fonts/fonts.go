// Package fonts locates the font files the renderer needs. The deck draws
// three scripts: kana (main font), and Latin plus Tamil (sub font). Neither
// font ships with the binary; they come from an explicit config path or from
// a system font lookup.
package fonts

import (
	"os"

	"github.com/flopp/go-findfont"

	"github.com/nilavan/kanadeck/pkg/errors"
)

// Default lookup candidates, tried in order against the system font
// directories. Noto covers both scripts and is packaged on most systems.
var (
	mainCandidates = []string{
		"NotoSansJP-Regular.ttf",
		"NotoSansJP-Regular.otf",
		"NotoSansCJKjp-Regular.otf",
		"ipag.ttf",
		"ipaexg.ttf",
	}
	subCandidates = []string{
		"NotoSansTamil-Regular.ttf",
		"NotoSansTamil-Regular.otf",
		"Latha.ttf",
		"NotoSans-Regular.ttf",
	}
)

// Set holds the resolved font file paths.
type Set struct {
	Main string // kana glyphs and titles
	Sub  string // romaji/Tamil auxiliary lines
}

// Resolve determines the font files to use. Non-empty config paths win and
// must exist; otherwise the system font directories are searched for known
// Japanese- and Tamil-capable families.
func Resolve(mainPath, subPath string) (Set, error) {
	main, err := resolve(mainPath, mainCandidates, "main (Japanese)")
	if err != nil {
		return Set{}, err
	}
	sub, err := resolve(subPath, subCandidates, "sub (Tamil)")
	if err != nil {
		return Set{}, err
	}
	return Set{Main: main, Sub: sub}, nil
}

func resolve(explicit string, candidates []string, role string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrap(errors.ErrCodeFontNotFound, err, "%s font %s", role, explicit)
		}
		return explicit, nil
	}

	for _, name := range candidates {
		if path, err := findfont.Find(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeFontNotFound,
		"no %s font found; install one of %v or set its path in the config", role, candidates)
}
