package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type coordinateFlags struct {
	Lat float64
	Lng float64
}

func addCoordinateFlags(cmd *cobra.Command, flags *coordinateFlags) {
	cmd.Flags().Float64Var(&flags.Lat, "lat", 0, "Latitude in degrees. Clamped to [-90, 90].")
	cmd.Flags().Float64Var(&flags.Lng, "lng", 0, "Longitude in degrees. Wrapped into [-180, 180).")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
}

func newNormalizeCommand(deps Dependencies, global *globalFlags) *cobra.Command {
	flags := &coordinateFlags{}
	cmd := &cobra.Command{
		Use:   "normalize --lat <degrees> --lng <degrees>",
		Short: "Print the normalized form of a coordinate.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := ParseFormat(global.Format)
			l := deps.Codec.Normalize(flags.Lat, flags.Lng)
			return render(cmd.OutOrStdout(), format, newCoordinateView(l), l.String())
		},
	}
	addCoordinateFlags(cmd, flags)
	return cmd
}

func newEncodeCommand(deps Dependencies, global *globalFlags) *cobra.Command {
	flags := &coordinateFlags{}
	var encoding encodingFlag
	cmd := &cobra.Command{
		Use:   "encode --lat <degrees> --lng <degrees>",
		Short: "Encode a coordinate as a SafeParcel payload.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := ParseFormat(global.Format)
			result, err := deps.Codec.Encode(flags.Lat, flags.Lng)
			if err != nil {
				return err
			}
			text, err := encodePayload(encoding, result.Payload)
			if err != nil {
				return err
			}
			view := encodeView{
				Coordinate: newCoordinateView(result.Coordinate),
				Encoding:   encoding.String(),
				Payload:    text,
			}
			return render(cmd.OutOrStdout(), format, view, text)
		},
	}
	addCoordinateFlags(cmd, flags)
	addEncodingFlag(cmd.Flags(), &encoding)
	return cmd
}

func newDecodeCommand(deps Dependencies, global *globalFlags) *cobra.Command {
	var encoding encodingFlag
	cmd := &cobra.Command{
		Use:   "decode [payload]",
		Short: "Decode a SafeParcel payload. Reads stdin when payload is omitted or \"-\".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := ParseFormat(global.Format)

			input, err := payloadArg(cmd, args)
			if err != nil {
				return err
			}
			payload, err := decodePayload(encoding, input)
			if err != nil {
				return err
			}
			l, err := deps.Codec.Decode(payload)
			if err != nil {
				return fmt.Errorf("decode parcel: %w", err)
			}
			return render(cmd.OutOrStdout(), format, newCoordinateView(l), l.String())
		},
	}
	addEncodingFlag(cmd.Flags(), &encoding)
	return cmd
}

func payloadArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read payload from stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no payload given")
	}
	return text, nil
}
