package main

import (
	"fmt"
	"io"
)

// Output defines a uniform interface to write to some stream.
// Besides the generic printing operations it carries the digest line
// convention shared by the sum and hmac commands: hex digest, two
// spaces, path — the layout tools like md5sum or b2sum emit, so
// existing checkfile tooling can consume the output.
type Output interface {
	Print(text string) (int, error)
	Println(text string) (int, error)
	Printf(format string, args ...interface{}) (int, error)
	Printfln(format string, args ...interface{}) (int, error)
	PrintDigestLine(digest string, path string) (int, error)
}

// plainOutput is a specific Output device which writes data in a raw format
type plainOutput struct {
	device io.Writer
}

func (o *plainOutput) Print(text string) (int, error) {
	return o.device.Write([]byte(text))
}

func (o *plainOutput) Println(text string) (int, error) {
	n1, err1 := o.device.Write([]byte(text))
	if err1 != nil {
		return n1, err1
	}
	n2, err2 := o.device.Write([]byte{'\n'})
	return n1 + n2, err2
}

func (o *plainOutput) Printf(format string, args ...interface{}) (int, error) {
	return o.device.Write([]byte(fmt.Sprintf(format, args...)))
}

func (o *plainOutput) Printfln(format string, args ...interface{}) (int, error) {
	return o.device.Write([]byte(fmt.Sprintf(format+"\n", args...)))
}

// PrintDigestLine writes one digest result in checkfile layout.
// Data read from stdin is conventionally reported under the path `-`.
func (o *plainOutput) PrintDigestLine(digest string, path string) (int, error) {
	if path == "" {
		path = `-`
	}
	return o.Printfln(`%s  %s`, digest, path)
}
