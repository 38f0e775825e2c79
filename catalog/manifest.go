package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/shapeset/blobstore"
	"github.com/hupe1980/shapeset/codec"
)

const (
	// CurrentVersion is the manifest format version written by Save.
	CurrentVersion = 1

	// DefaultManifestName is the conventional manifest file name.
	DefaultManifestName = "catalog.json"
)

// Manifest is the persisted form of a catalog: the ordered entries plus the
// label -> synset alias map. Compression is chosen by file extension:
// ".zst" (zstd) and ".lz4" are transparent on both load and save.
type Manifest struct {
	Version int               `json:"version"`
	Entries []Entry           `json:"entries"`
	Aliases map[string]string `json:"aliases,omitempty"`
}

// Save writes the catalog manifest to path atomically (temp file + rename).
// If cdc is nil, codec.Default is used.
func Save(path string, c *Catalog, cdc codec.Codec) error {
	if cdc == nil {
		cdc = codec.Default
	}

	m := Manifest{
		Version: CurrentVersion,
		Entries: c.Entries(),
		Aliases: c.Aliases(),
	}
	data, err := cdc.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	data, err = compress(path, data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load reads a catalog manifest from the local file system.
// If cdc is nil, codec.Default is used.
func Load(path string, cdc codec.Codec) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(path, data, cdc)
}

// LoadFromStore reads a catalog manifest blob from a BlobStore.
// If cdc is nil, codec.Default is used.
func LoadFromStore(ctx context.Context, store blobstore.BlobStore, name string, cdc codec.Codec) (*Catalog, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	return decode(name, data, cdc)
}

// FromStore builds a catalog by listing a store's {synset}/{model}/{modelFile}
// keys. Keys are listed sorted, so synset grouping is contiguous by
// construction. No aliases are produced; register them on a Builder instead
// when a synset dictionary is available.
func FromStore(ctx context.Context, store blobstore.BlobStore, modelFile string) (*Catalog, error) {
	names, err := store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	b := NewBuilder()
	for _, name := range names {
		dir, file := path.Split(name)
		if file != modelFile {
			continue
		}
		parts := strings.Split(strings.Trim(dir, "/"), "/")
		if len(parts) != 2 {
			continue
		}
		b.Append(parts[0], parts[1])
	}
	return b.Build()
}

func decode(name string, data []byte, cdc codec.Codec) (*Catalog, error) {
	if cdc == nil {
		cdc = codec.Default
	}

	data, err := decompress(name, data)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := cdc.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", name, err)
	}
	if m.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported manifest version: %d (expected %d)", m.Version, CurrentVersion)
	}

	b := NewBuilder()
	for _, e := range m.Entries {
		b.Append(e.SynsetID, e.ModelID)
	}
	for label, synset := range m.Aliases {
		b.Alias(label, synset)
	}
	return b.Build()
}

func compress(name string, data []byte) ([]byte, error) {
	switch path.Ext(name) {
	case ".zst":
		var buf bytes.Buffer
		w, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".lz4":
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			w.Close()
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}

func decompress(name string, data []byte) ([]byte, error) {
	switch path.Ext(name) {
	case ".zst":
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".lz4":
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return data, nil
	}
}
