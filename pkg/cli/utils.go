package cli

import (
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// printResult writes an operation result to stdout as indented JSON
func printResult(result *model.Result) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode result")
	}
	fmt.Println(string(encoded))
	return nil
}
