package persist

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	enc := NewEncoder(7)
	enc.WriteUint64(42)
	enc.WriteInt64(-5)
	enc.WriteBool(true)
	enc.WriteBytes([]byte("hello"))
	enc.WriteFixed([]byte{1, 2, 3, 4})
	enc.WriteString("world")

	dec, err := NewDecoder(enc.Bytes())
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if dec.Version != 7 {
		t.Fatalf("expected version 7, got %d", dec.Version)
	}

	u, err := dec.ReadUint64()
	if err != nil || u != 42 {
		t.Fatalf("ReadUint64: got %d err %v", u, err)
	}
	i, err := dec.ReadInt64()
	if err != nil || i != -5 {
		t.Fatalf("ReadInt64: got %d err %v", i, err)
	}
	b, err := dec.ReadBool()
	if err != nil || !b {
		t.Fatalf("ReadBool: got %v err %v", b, err)
	}
	bs, err := dec.ReadBytes()
	if err != nil || string(bs) != "hello" {
		t.Fatalf("ReadBytes: got %q err %v", bs, err)
	}
	fixed, err := dec.ReadFixed(4)
	if err != nil || len(fixed) != 4 {
		t.Fatalf("ReadFixed: got %v err %v", fixed, err)
	}
	s, err := dec.ReadString()
	if err != nil || s != "world" {
		t.Fatalf("ReadString: got %q err %v", s, err)
	}
	if dec.Remaining() {
		t.Fatalf("expected no remaining bytes after reading every field")
	}
}

func TestSaveLoadJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/settings.json"
	meta := Metadata{Header: "Test Settings", Version: "1.0"}

	type settings struct {
		Name  string
		Count int
	}
	want := settings{Name: "alice", Count: 3}

	if err := SaveJSON(meta, want, path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	var got settings
	if err := LoadJSON(meta, &got, path); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestLoadJSONRejectsWrongVersion(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/settings.json"
	if err := SaveJSON(Metadata{Header: "H", Version: "1.0"}, 42, path); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	var out int
	err := LoadJSON(Metadata{Header: "H", Version: "2.0"}, &out, path)
	if err != ErrBadVersion {
		t.Fatalf("expected ErrBadVersion, got %v", err)
	}
}
