package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/marcos-nsantos/latlng-parcel/internal/domain/valueobject"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/coordinate"
)

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// Codec normalizes coordinates and converts them to and from parcels.
type Codec interface {
	Normalize(lat, lng float64) valueobject.LatLng
	Encode(lat, lng float64) (*coordinate.EncodeResult, error)
	Decode(payload []byte) (valueobject.LatLng, error)
}

// Dependencies wires runtime services.
type Dependencies struct {
	Codec   Codec
	Stdin   io.Reader
	Version string
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	if deps.Stdin != nil {
		cmd.SetIn(deps.Stdin)
	}

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var usage *usageError
	if errors.As(err, &usage) {
		_, _ = fmt.Fprintln(stderr, usage.Error())
		return 2
	}

	if matches := unknownCommandPattern.FindStringSubmatch(err.Error()); len(matches) > 1 {
		_, _ = fmt.Fprintf(stderr, "No such command '%s'\n", matches[1])
		return 2
	}

	_, _ = fmt.Fprintln(stderr, err.Error())
	return 1
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}
