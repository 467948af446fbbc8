package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testOutput collects everything written through the Output interface
type testOutput struct {
	lines []string
}

func (o *testOutput) Print(text string) (int, error) {
	o.lines = append(o.lines, text)
	return len(text), nil
}

func (o *testOutput) Println(text string) (int, error) {
	o.lines = append(o.lines, text)
	return len(text) + 1, nil
}

func (o *testOutput) Printf(format string, args ...interface{}) (int, error) {
	return o.Print(fmt.Sprintf(format, args...))
}

func (o *testOutput) Printfln(format string, args ...interface{}) (int, error) {
	return o.Println(fmt.Sprintf(format, args...))
}

func (o *testOutput) PrintDigestLine(digest string, path string) (int, error) {
	if path == "" {
		path = `-`
	}
	return o.Printfln(`%s  %s`, digest, path)
}

func TestSumCommandRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), `abc.txt`)
	if err := os.WriteFile(path, []byte(`abc`), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := &SumCommand{
		Files:         []string{path},
		HashAlgorithm: `sha-256`,
		Length:        64,
	}
	w := new(testOutput)
	logOut := new(testOutput)
	exitCode, err := cmd.Run(w, logOut)
	if err != nil {
		t.Fatal(err)
	}
	if exitCode != 0 {
		t.Fatalf(`expected exit code 0, got %d`, exitCode)
	}
	if len(w.lines) != 1 {
		t.Fatalf(`expected one output line, got %d`, len(w.lines))
	}
	expected := `ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad`
	if !strings.HasPrefix(w.lines[0], expected) {
		t.Errorf(`unexpected sum output: %s`, w.lines[0])
	}
}

func TestSumCommandRejectsUnknownAlgorithm(t *testing.T) {
	cmd := &SumCommand{
		Files:         []string{`/nonexistent`},
		HashAlgorithm: `rot13`,
		Length:        64,
	}
	exitCode, err := cmd.Run(new(testOutput), new(testOutput))
	if err == nil {
		t.Fatal(`expected error for unknown algorithm`)
	}
	if exitCode != 1 {
		t.Errorf(`expected exit code 1, got %d`, exitCode)
	}
}

func TestHMACCommandRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), `msg.txt`)
	if err := os.WriteFile(path, []byte(`Hi There`), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := &HMACCommand{
		Files:         []string{path},
		HashAlgorithm: `sha-256`,
		Key:           strings.Repeat(`0b`, 20),
	}
	w := new(testOutput)
	exitCode, err := cmd.Run(w, new(testOutput))
	if err != nil {
		t.Fatal(err)
	}
	if exitCode != 0 {
		t.Fatalf(`expected exit code 0, got %d`, exitCode)
	}
	expected := `b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7`
	if !strings.HasPrefix(w.lines[0], expected) {
		t.Errorf(`unexpected hmac output: %s`, w.lines[0])
	}
}

func TestPBKDF2CommandRun(t *testing.T) {
	cmd := &PBKDF2Command{
		HashAlgorithm: `sha-1`,
		Password:      `password`,
		Salt:          `73616c74`, // "salt"
		Iterations:    1,
		Length:        20,
	}
	w := new(testOutput)
	exitCode, err := cmd.Run(w, new(testOutput))
	if err != nil {
		t.Fatal(err)
	}
	if exitCode != 0 {
		t.Fatalf(`expected exit code 0, got %d`, exitCode)
	}
	if w.lines[0] != `0c60c80f961f0e71f3a9b524af6012062fe037a6` {
		t.Errorf(`unexpected pbkdf2 output: %s`, w.lines[0])
	}
}

func TestHashAlgosCommandRun(t *testing.T) {
	cmd := &HashAlgosCommand{JSONOutput: true}
	w := new(testOutput)
	exitCode, err := cmd.Run(w, new(testOutput))
	if err != nil {
		t.Fatal(err)
	}
	if exitCode != 0 {
		t.Fatalf(`expected exit code 0, got %d`, exitCode)
	}

	var data struct {
		CheckSucceeded bool            `json:"check-result"`
		SupHashAlgos   []hashAlgoEntry `json:"supported-hash-algorithms"`
	}
	if err := json.Unmarshal([]byte(w.lines[0]), &data); err != nil {
		t.Fatal(err)
	}
	if len(data.SupHashAlgos) != 20 {
		t.Errorf(`expected 20 supported algorithms, got %d`, len(data.SupHashAlgos))
	}

	check := &HashAlgosCommand{CheckSupport: `fnv-1a-128`}
	exitCode, err = check.Run(new(testOutput), new(testOutput))
	if err != nil {
		t.Fatal(err)
	}
	if exitCode != 1 {
		t.Errorf(`expected exit code 1 for unsupported algorithm, got %d`, exitCode)
	}
}
