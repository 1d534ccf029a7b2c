// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists the results of dialogs in a bbolt database,
// so that the values entered in a dialog seed it the next time it runs.
// Values are stored as YAML.
package store

import (
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"cogentcore.org/eve/base/errors"
	"cogentcore.org/eve/symbol"
	"cogentcore.org/eve/values"
)

// ErrNoRecord is returned by [Store.Get] when there is no record for a dialog.
var ErrNoRecord = errors.New("no such record")

const (
	bucketRecords = "records"
	bucketHistory = "history"
)

// Store is a database of dialog records.
type Store struct {
	db  *bbolt.DB
	tab *symbol.Table
}

// Open opens or creates the database at the given path. Symbols in
// stored values are interned in the given table.
func Open(path string, tab *symbol.Table) (*Store, error) {
	db, err := bbolt.Open(path, 0o644, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range []string{bucketRecords, bucketHistory} {
			if _, err := tx.CreateBucketIfNotExists([]byte(b)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, tab: tab}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put replaces the record of the named dialog.
func (s *Store) Put(dialog string, record *values.Dictionary) error {
	data, err := values.MarshalYAML(values.MakeDict(record))
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).Put([]byte(dialog), data)
	})
}

// Get returns the record of the named dialog, or [ErrNoRecord].
func (s *Store) Get(dialog string) (*values.Dictionary, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucketRecords)).Get([]byte(dialog))
		if v == nil {
			return fmt.Errorf("%w: %q", ErrNoRecord, dialog)
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	v, err := values.UnmarshalYAML(data, s.tab)
	if err != nil {
		return nil, fmt.Errorf("store: record %q: %w", dialog, err)
	}
	return v.AsDict()
}

// Delete deletes the record of the named dialog, if any.
func (s *Store) Delete(dialog string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).Delete([]byte(dialog))
	})
}

// Dialogs returns the names of the dialogs with records, sorted.
func (s *Store) Dialogs() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Entry is one closing of a dialog.
type Entry struct {
	Seq     uint64
	Action  symbol.Symbol
	Results *values.Dictionary
}

// AddHistory records that the named dialog closed with the given
// action and results, returning the sequence number of the entry.
func (s *Store) AddHistory(dialog string, action symbol.Symbol, results *values.Dictionary) (uint64, error) {
	d := values.NewDict().
		Set(s.tab.Intern("action"), values.MakeSymbol(action)).
		Set(s.tab.Intern("results"), values.MakeDict(results))
	data, err := values.MarshalYAML(values.MakeDict(d))
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketHistory)).CreateBucketIfNotExists([]byte(dialog))
		if err != nil {
			return err
		}
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return seq, err
}

// History returns the entries of the named dialog, oldest first.
func (s *Store) History(dialog string) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory)).Bucket([]byte(dialog))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			e, err := s.decodeEntry(v)
			if err != nil {
				return err
			}
			e.Seq = binary.BigEndian.Uint64(k)
			entries = append(entries, e)
			return nil
		})
	})
	return entries, err
}

func (s *Store) decodeEntry(data []byte) (Entry, error) {
	v, err := values.UnmarshalYAML(data, s.tab)
	if err != nil {
		return Entry{}, err
	}
	d, err := v.AsDict()
	if err != nil {
		return Entry{}, err
	}
	var e Entry
	if a, ok := d.At(s.tab.Intern("action")); ok {
		e.Action, _ = a.TrySymbol()
	}
	e.Results = values.NewDict()
	if r, ok := d.At(s.tab.Intern("results")); ok {
		if e.Results, err = r.AsDict(); err != nil {
			return Entry{}, err
		}
	}
	return e, nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
