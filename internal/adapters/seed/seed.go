// Package seed loads a viewer bootstrap file: the raw log collection, preset filter
// values and pre-existing discussion threads
//
// Seeds are YAML (optionally gzip compressed, by .gz suffix). Unknown keys are rejected
// so typos in a seed fail loudly instead of silently dropping a preset
package seed

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"sarifview/internal/core/discuss"
	"sarifview/internal/core/filter"
	"sarifview/internal/core/runs"
	perr "sarifview/internal/platform/errors"
	"sarifview/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

// Comment is a seeded comment
type Comment struct {
	Author string `yaml:"author"`
	Text   string `yaml:"text"`
}

// Thread is a seeded discussion thread
type Thread struct {
	Signature   string              `yaml:"signature"`
	Status      discuss.Status      `yaml:"status,omitempty"`
	Disposition discuss.Disposition `yaml:"disposition,omitempty"`
	Comments    []Comment           `yaml:"comments,omitempty"`
}

// File is the decoded seed
type File struct {
	Logs        []runs.Log                       `yaml:"logs"`
	Filter      map[filter.Category]filter.Value `yaml:"filter,omitempty"`
	Discussions []Thread                         `yaml:"discussions,omitempty"`
}

// Target receives a seed; *service.Session satisfies it
type Target interface {
	SetLogs(col *runs.Collection)
	SetFilter(cat filter.Category, v filter.Value)
	CreateDiscussion(signature string) (*discuss.Thread, error)
	PostComment(author, text string) (discuss.Comment, error)
	SetStatus(signature string, st discuss.Status) error
	SetDisposition(signature string, d discuss.Disposition) error
	SelectDiscussion(signature string) error
}

// Load reads and decodes the seed at path
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "open seed %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Named("seed").Warn().Err(cerr).Str("path", path).Msg("close seed")
		}
	}()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "gunzip seed %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return Decode(r)
}

// Decode decodes a YAML seed and checks its enum values
// An empty document decodes to an empty seed
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out File
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "decode seed")
	}
	for cat := range out.Filter {
		if !cat.Valid() {
			return nil, perr.WithField(perr.InvalidArgf("unknown filter category %q", cat), "filter")
		}
	}
	for _, th := range out.Discussions {
		if th.Status != "" && !th.Status.Valid() {
			return nil, perr.WithField(perr.InvalidArgf("thread %q: unknown status %q", th.Signature, th.Status), "status")
		}
		if th.Disposition != "" && !th.Disposition.Valid() {
			return nil, perr.WithField(perr.InvalidArgf("thread %q: unknown disposition %q", th.Signature, th.Disposition), "disposition")
		}
	}
	return &out, nil
}

// Collection returns the seeded logs as a collection, nil when the seed has none
// so the viewer keeps its loading state
func (f *File) Collection() *runs.Collection {
	if len(f.Logs) == 0 {
		return nil
	}
	return &runs.Collection{Logs: f.Logs}
}

// Apply pushes the seed into t and leaves the discussion pane in list view
func (f *File) Apply(t Target) error {
	if col := f.Collection(); col != nil {
		t.SetLogs(col)
	}
	for cat, v := range f.Filter {
		t.SetFilter(cat, v)
	}
	for _, th := range f.Discussions {
		if _, err := t.CreateDiscussion(th.Signature); err != nil {
			return perr.WithOp(err, "seed.createDiscussion")
		}
		for _, c := range th.Comments {
			if _, err := t.PostComment(c.Author, c.Text); err != nil {
				return perr.WithOp(err, "seed.postComment")
			}
		}
		if th.Status != "" {
			if err := t.SetStatus(th.Signature, th.Status); err != nil {
				return perr.WithOp(err, "seed.setStatus")
			}
		}
		if th.Disposition != "" {
			if err := t.SetDisposition(th.Signature, th.Disposition); err != nil {
				return perr.WithOp(err, "seed.setDisposition")
			}
		}
	}
	if err := t.SelectDiscussion(""); err != nil {
		return err
	}
	logger.Named("seed").Info().
		Int("logs", len(f.Logs)).
		Int("filters", len(f.Filter)).
		Int("threads", len(f.Discussions)).
		Msg("seed applied")
	return nil
}
