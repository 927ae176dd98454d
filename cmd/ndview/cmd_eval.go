package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndview/tensor"
)

func newEvalCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		configPath string
		shape      []int
		index      []int
		dtype      string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Index into an arange array and materialize the resulting view",
		Example: `  ndview eval --shape 2,3,4 --index 1,2
  ndview eval --config view.yaml --dtype int64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := defaultViewConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadViewConfig(configPath); err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("shape") {
				cfg.Shape = shape
			}
			if flags.Changed("index") {
				cfg.Index = index
			}
			if flags.Changed("dtype") {
				cfg.DType = dtype
			}

			log := logger(cmd)
			log.Debug("evaluating view", "shape", cfg.Shape, "index", cfg.Index, "dtype", cfg.DType)
			return runEval(cmd.OutOrStdout(), log, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML file describing the view")
	flags.IntSliceVarP(&shape, "shape", "s", nil, "array shape, e.g. 2,3,4")
	flags.IntSliceVarP(&index, "index", "i", nil, "leading-axis indices applied in order")
	flags.StringVarP(&dtype, "dtype", "t", "float32", "element type: float32, float64, int32, int64, uint8")

	return cmd
}

func runEval(w io.Writer, log *slog.Logger, cfg viewConfig) error {
	if len(cfg.Shape) == 0 {
		return errors.New("a shape is required")
	}

	dt, ok := tensor.ParseDataType(cfg.DType)
	if !ok {
		return fmt.Errorf("unknown dtype %q", cfg.DType)
	}

	switch dt {
	case tensor.Float32:
		return evalView[float32](w, log, cfg)
	case tensor.Float64:
		return evalView[float64](w, log, cfg)
	case tensor.Int32:
		return evalView[int32](w, log, cfg)
	case tensor.Int64:
		return evalView[int64](w, log, cfg)
	case tensor.Uint8:
		return evalView[uint8](w, log, cfg)
	default:
		return fmt.Errorf("dtype %s has no arange", dt)
	}
}

func evalView[T tensor.Numeric](w io.Writer, log *slog.Logger, cfg viewConfig) error {
	shape, err := tensor.NewExtent(cfg.Shape...)
	if err != nil {
		return fmt.Errorf("shape: %w", err)
	}

	a, err := tensor.Arange[T](shape)
	if err != nil {
		return err
	}

	v := a.View()
	for k, i := range cfg.Index {
		if v, err = v.Index(i); err != nil {
			return fmt.Errorf("index path %v: %w", cfg.Index[:k+1], err)
		}
		log.Debug("indexed", "index", i, "shape", v.Shape().String(), "offset", v.Offset())
	}

	dense := v.Eval()
	fmt.Fprintf(w, "dtype:      %s\n", dense.DType())
	fmt.Fprintf(w, "bytes:      %d\n", dense.ByteSize())
	fmt.Fprintf(w, "shape:      %s\n", v.Shape())
	fmt.Fprintf(w, "compressed: %s\n", v.Shape().Compressed())
	fmt.Fprintf(w, "stride:     %s\n", v.Stride())
	fmt.Fprintf(w, "offset:     %d\n", v.Offset())
	fmt.Fprintf(w, "values:     %s\n", dense)
	return nil
}
