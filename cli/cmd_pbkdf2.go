package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/meisterluk/digests-go/internals"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cliPBKDF2Command defines the CLI arguments as kingpin requires them
type cliPBKDF2Command struct {
	cmd           *kingpin.CmdClause
	HashAlgorithm *string
	Password      *string
	Salt          *string
	Iterations    *int
	Length        *int
	ConfigOutput  *bool
	JSONOutput    *bool
}

func newCLIPBKDF2Command(app *kingpin.Application) *cliPBKDF2Command {
	c := new(cliPBKDF2Command)
	c.cmd = app.Command("pbkdf2", "Derive a key from a password with PBKDF2.")

	c.HashAlgorithm = c.cmd.Flag("algorithm", "HMAC hash algorithm to use").Default(envOr("DIGESTS_ALGORITHM", "")).Short('a').String()
	c.Password = c.cmd.Flag("password", "the password; read from stdin if not given").String()
	c.Salt = c.cmd.Flag("salt", "salt as hexadecimal string").Required().String()
	c.Iterations = c.cmd.Flag("iterations", "number of HMAC iterations").Default("600000").Int()
	c.Length = c.cmd.Flag("length", "derived key length in bytes").Default("32").Int()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

// PBKDF2Command defines the CLI command parameters
type PBKDF2Command struct {
	HashAlgorithm string `json:"hash-algorithm"`
	Password      string `json:"-"`
	Salt          string `json:"salt"`
	Iterations    int    `json:"iterations"`
	Length        int    `json:"length"`
	ConfigOutput  bool   `json:"config"`
	JSONOutput    bool   `json:"json"`
}

func (c *cliPBKDF2Command) Validate() (*PBKDF2Command, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// migrate cliPBKDF2Command to PBKDF2Command
	cmd := new(PBKDF2Command)
	cmd.HashAlgorithm = *c.HashAlgorithm
	cmd.Password = *c.Password
	cmd.Salt = *c.Salt
	cmd.Iterations = *c.Iterations
	cmd.Length = *c.Length
	cmd.ConfigOutput = *c.ConfigOutput
	cmd.JSONOutput = *c.JSONOutput || cfg.JSONOutput

	if cmd.HashAlgorithm == "" {
		cmd.HashAlgorithm = cfg.Algorithm
	}
	if cmd.HashAlgorithm == "" {
		cmd.HashAlgorithm = defaultHashAlgorithm
	}

	// handle environment variables
	envJSON, errJSON := envToBool("DIGESTS_JSON")
	if errJSON == nil {
		cmd.JSONOutput = envJSON
	}

	return cmd, nil
}

// Run executes the CLI command pbkdf2 on the given parameter set,
// writes the result to Output w and error/information messages to log.
// It returns a pair (exit code, error)
func (c *PBKDF2Command) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput;
		// the password never appears in it
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	algo, err := internals.HashAlgorithmFromString(c.HashAlgorithm)
	if err != nil {
		return 1, err
	}
	salt, err := decodeHexArg(`salt`, c.Salt)
	if err != nil {
		return 1, err
	}

	password := c.Password
	if password == "" {
		// read one line from stdin, without echo considerations:
		// non-interactive use feeds the password through a pipe
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 2, fmt.Errorf(`could not read password from stdin: %s`, err.Error())
		}
		password = strings.TrimRight(line, "\r\n")
	}

	derived, err := internals.PBKDF2([]byte(password), salt, c.Iterations, c.Length, algo)
	if err != nil {
		return 1, err
	}

	if c.JSONOutput {
		type output struct {
			Key string `json:"key"`
		}
		b, err := json.Marshal(&output{Key: hex.EncodeToString(derived)})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		w.Println(hex.EncodeToString(derived))
	}
	return 0, nil
}
