// txwire is a command line tool to encode and decode inputs-only Bitcoin
// transactions. It reads hex or JSON from a flag, a file argument or stdin
// and prints the other representation.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"github.com/bsv-blockchain/go-txwire/model"
	"github.com/bsv-blockchain/go-txwire/ulogger"
)

var (
	logger = ulogger.New("txwire")
	json   = jsoniter.ConfigCompatibleWithStandardLibrary
)

func main() {
	app := &cli.App{
		Name:  "txwire",
		Usage: "encode and decode inputs-only Bitcoin transactions",
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode transaction hex and print a readable rendering",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "hex",
						Usage: "raw transaction hex, instead of a file or stdin",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the transaction as JSON",
					},
				},
				Action: decode,
			},
			{
				Name:      "encode",
				Usage:     "read the JSON form of a transaction and print its wire hex",
				ArgsUsage: "[file]",
				Action:    encode,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%v", err)
	}
}

func decode(c *cli.Context) error {
	txHex := c.String("hex")
	if txHex == "" {
		raw, err := readInput(c)
		if err != nil {
			return err
		}

		txHex = strings.TrimSpace(string(raw))
	}

	tx, err := model.NewTxFromString(txHex)
	if err != nil {
		return err
	}

	logger.Debugf("decoded transaction with %d inputs", tx.InputCount())

	if c.Bool("json") {
		b, err := json.MarshalIndent(tx, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	fmt.Print(tx.String())

	return nil
}

func encode(c *cli.Context) error {
	raw, err := readInput(c)
	if err != nil {
		return err
	}

	tx := &model.Tx{}
	if err := json.Unmarshal(raw, tx); err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(tx.Bytes()))

	return nil
}

func readInput(c *cli.Context) ([]byte, error) {
	if c.Args().Len() > 0 {
		return os.ReadFile(c.Args().First())
	}

	return io.ReadAll(os.Stdin)
}
