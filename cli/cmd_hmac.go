package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meisterluk/digests-go/internals"
	"gopkg.in/alecthomas/kingpin.v2"
)

// cliHMACCommand defines the CLI arguments as kingpin requires them
type cliHMACCommand struct {
	cmd           *kingpin.CmdClause
	Files         *[]string
	HashAlgorithm *string
	Key           *string
	KeyFile       *string
	ConfigOutput  *bool
	JSONOutput    *bool
}

func newCLIHMACCommand(app *kingpin.Application) *cliHMACCommand {
	c := new(cliHMACCommand)
	c.cmd = app.Command("hmac", "Compute the HMAC authentication tag of files or standard input.")

	c.Files = c.cmd.Arg("file", "files to authenticate; stdin if none is given").Strings()
	c.HashAlgorithm = c.cmd.Flag("algorithm", "hash algorithm to use").Default(envOr("DIGESTS_ALGORITHM", "")).Short('a').String()
	c.Key = c.cmd.Flag("key", "key as hexadecimal string").String()
	c.KeyFile = c.cmd.Flag("key-file", "read the raw key from this file").String()
	c.ConfigOutput = c.cmd.Flag("config", "only prints the configuration and terminates").Bool()
	c.JSONOutput = c.cmd.Flag("json", "return output as JSON, not as plain text").Bool()

	return c
}

// HMACCommand defines the CLI command parameters
type HMACCommand struct {
	Files         []string `json:"files"`
	HashAlgorithm string   `json:"hash-algorithm"`
	Key           string   `json:"key"`
	KeyFile       string   `json:"key-file"`
	ConfigOutput  bool     `json:"config"`
	JSONOutput    bool     `json:"json"`
}

func (c *cliHMACCommand) Validate() (*HMACCommand, error) {
	// validity checks (check conditions not covered by kingpin)
	if *c.Key != "" && *c.KeyFile != "" {
		return nil, fmt.Errorf("cannot accept --key and --key-file simultaneously")
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// migrate cliHMACCommand to HMACCommand
	cmd := new(HMACCommand)
	cmd.Files = append(cmd.Files, (*c.Files)...)
	cmd.HashAlgorithm = *c.HashAlgorithm
	cmd.Key = *c.Key
	cmd.KeyFile = *c.KeyFile
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

func (c *HMACCommand) key() ([]byte, error) {
	if c.KeyFile != "" {
		return os.ReadFile(c.KeyFile)
	}
	return decodeHexArg(`key`, c.Key)
}

// Run executes the CLI command hmac on the given parameter set,
// writes the result to Output w and error/information messages to log.
// It returns a pair (exit code, error)
func (c *HMACCommand) Run(w Output, log Output) (int, error) {
	if c.ConfigOutput {
		// config output is printed in JSON independent of c.JSONOutput
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
	key, err := c.key()
	if err != nil {
		return 1, err
	}

	mac, err := internals.NewHMAC(algo, key)
	if err != nil {
		return 1, err
	}
	defer mac.Close()

	type fileTag struct {
		Path string `json:"path"`
		Tag  string `json:"tag"`
	}
	results := make([]fileTag, 0, len(c.Files)+1)

	feed := func(r io.Reader) error {
		chunk := make([]byte, 64*1024)
		for {
			n, err := r.Read(chunk)
			if n > 0 {
				if uerr := mac.Update(chunk[:n]); uerr != nil {
					return uerr
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}

	if len(c.Files) == 0 {
		if err := feed(os.Stdin); err != nil {
			return 2, err
		}
		tag, err := mac.HexDigest()
		if err != nil {
			return 2, err
		}
		results = append(results, fileTag{Path: `-`, Tag: tag})
	} else {
		for _, path := range c.Files {
			mac.Init()
			fd, err := os.Open(path)
			if err != nil {
				return 2, err
			}
			err = feed(fd)
			fd.Close()
			if err != nil {
				return 2, err
			}
			tag, err := mac.HexDigest()
			if err != nil {
				return 2, err
			}
			results = append(results, fileTag{Path: path, Tag: tag})
		}
	}

	if c.JSONOutput {
		b, err := json.Marshal(results)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(b))
	} else {
		for _, r := range results {
			w.PrintDigestLine(r.Tag, r.Path)
		}
	}
	return 0, nil
}
