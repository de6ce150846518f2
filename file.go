// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// file.go — file persistence for serialized values: plain or atomic
// (temp+rename) writes, optional AES-256-GCM encryption at rest, and the
// matching read path.

package sera

import (
	"fmt"
	"os"
	"path/filepath"
)

// SerializeToFile encodes v and writes the result to path. With
// Config.AtomicWrites the bytes land in a temp file in the same directory
// and are renamed into place; with Config.EncryptionKey they are sealed
// before touching disk.
func (s *Serializer) SerializeToFile(path string, v any) error {
	data, err := s.Serialize(v)
	if err != nil {
		return err
	}

	if s.enc != nil {
		data, err = s.enc.Encrypt(data)
		if err != nil {
			s.stats.Errors.Add(1)
			s.cfg.Metrics.RecordError("encrypt")
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
	}

	if err := s.writeFile(path, data); err != nil {
		s.stats.Errors.Add(1)
		s.cfg.Metrics.RecordError("write")
		return err
	}

	s.stats.FileWrites.Add(1)
	s.cfg.Metrics.RecordFileOp("write", len(data))
	s.cfg.Logger.Debug("serialized to file", "path", path, "bytes", len(data))
	return nil
}

// DeserializeFromFile reads path, decrypts when an encryption key is
// configured, and decodes the contents into v.
func (s *Serializer) DeserializeFromFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.stats.Errors.Add(1)
		s.cfg.Metrics.RecordError("read")
		return fmt.Errorf("sera: read %s: %w", path, err)
	}
	s.stats.FileReads.Add(1)
	s.cfg.Metrics.RecordFileOp("read", len(data))

	if s.enc != nil {
		data, err = s.enc.Decrypt(data)
		if err != nil {
			s.stats.Errors.Add(1)
			s.cfg.Metrics.RecordError("decrypt")
			return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}
	}

	return s.Deserialize(data, v)
}

// TrySerializeToFile is SerializeToFile with the error swallowed; it
// reports whether the file was written.
func (s *Serializer) TrySerializeToFile(path string, v any) bool {
	if err := s.SerializeToFile(path, v); err != nil {
		s.cfg.Logger.Debug("serialize to file failed", "path", path, "error", err)
		return false
	}
	return true
}

// TryDeserializeFromFile is DeserializeFromFile with the error swallowed;
// it reports whether decoding succeeded.
func (s *Serializer) TryDeserializeFromFile(path string, v any) bool {
	if err := s.DeserializeFromFile(path, v); err != nil {
		s.cfg.Logger.Debug("deserialize from file failed", "path", path, "error", err)
		return false
	}
	return true
}

// writeFile writes data to path honoring FileMode and AtomicWrites. The
// temp file is created in the target directory so the rename never crosses
// a filesystem boundary.
func (s *Serializer) writeFile(path string, data []byte) error {
	if !s.cfg.AtomicWrites {
		if err := os.WriteFile(path, data, s.cfg.FileMode); err != nil {
			return err
		}
		// WriteFile applies the mode only when it creates the file; chmod
		// keeps overwrites of existing files consistent with FileMode.
		return os.Chmod(path, s.cfg.FileMode)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("sera: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sera: write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(s.cfg.FileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sera: chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("sera: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("sera: rename %s: %w", path, err)
	}
	return nil
}
