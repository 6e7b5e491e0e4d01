package fileio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhillyerd/enmime"

	"lifeexp/internal"
)

// readMail loads a table delivered by e-mail: the first attachment in a
// supported format, or else the first table in the HTML body.
func readMail(path string, _ LoadOptions) (*internal.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("read message %s: %w", path, err)
	}

	for _, att := range env.Attachments {
		name := strings.TrimSpace(att.FileName)
		ext := Ext(name)
		load, ok := loaders[ext]
		if !ok || ext == ".eml" {
			continue
		}
		return loadAttachment(load, ext, att.Content)
	}

	if env.HTML != "" {
		return parseHTMLTable(strings.NewReader(env.HTML))
	}
	return nil, fmt.Errorf("%w: %s has no table attachment", internal.ErrUnsupportedFormat, path)
}

// loadAttachment spills the attachment to a temporary file so the regular
// path-based loaders can read it.
func loadAttachment(load loader, ext string, content []byte) (*internal.Table, error) {
	dir, err := os.MkdirTemp("", "lifeexp-mail-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "attachment"+ext)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, err
	}
	return load(path, LoadOptions{})
}
