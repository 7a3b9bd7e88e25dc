package memory

import (
	"bytes"
	"testing"
)

func TestPutGetDelete(t *testing.T) {
	s := New()

	if _, _, ok := s.Get("AB12C"); ok {
		t.Fatal("Get on empty store returned ok")
	}

	payload := []byte("hello")
	s.Put("AB12C", "hello.txt", payload)

	name, data, ok := s.Get("AB12C")
	if !ok {
		t.Fatal("Get after Put returned !ok")
	}
	if name != "hello.txt" || !bytes.Equal(data, payload) {
		t.Fatalf("Get = %q/%q", name, data)
	}

	// Reads do not consume.
	if _, _, ok := s.Get("AB12C"); !ok {
		t.Fatal("second Get returned !ok")
	}

	s.Delete("AB12C")
	if _, _, ok := s.Get("AB12C"); ok {
		t.Fatal("Get after Delete returned ok")
	}

	// Deleting again is a no-op.
	s.Delete("AB12C")
}

func TestPutReplaces(t *testing.T) {
	s := New()
	s.Put("XYZ01", "a.txt", []byte("one"))
	s.Put("XYZ01", "b.txt", []byte("two"))

	name, data, ok := s.Get("XYZ01")
	if !ok || name != "b.txt" || string(data) != "two" {
		t.Fatalf("Get = %q/%q ok=%v", name, data, ok)
	}
}

func TestCloseDiscards(t *testing.T) {
	s := New()
	s.Put("AB12C", "a.txt", []byte("one"))
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, _, ok := s.Get("AB12C"); ok {
		t.Fatal("Get after Close returned ok")
	}
}
