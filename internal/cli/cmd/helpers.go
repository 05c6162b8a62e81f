package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/rclayout/internal/cli"
	"github.com/bnema/rclayout/internal/domain/entity"
)

var errAppNotInitialized = errors.New("app not initialized")

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errAppNotInitialized
	}
	return a, nil
}

// parseLocation parses ZONE:INDEX. Zone ids contain colons themselves
// ("tab0:root"), so the index follows the last one.
func parseLocation(s string) (entity.Location, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return entity.Location{}, fmt.Errorf("invalid location %q: want ZONE:INDEX", s)
	}
	index, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return entity.Location{}, fmt.Errorf("invalid location index in %q: %w", s, err)
	}
	return entity.Location{ZoneID: s[:i], Index: index}, nil
}

func parseIndex(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return n, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
