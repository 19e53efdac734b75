package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"godis-dict/config"
	"godis-dict/datastruct/dict"
	"godis-dict/lib/logger"
	"godis-dict/persistent"
)

func main() {
	if err := command().Run(context.Background(), os.Args); err != nil {
		logger.Fatal(err)
	}
}

func command() *cli.Command {
	return &cli.Command{
		Name:  "dictload",
		Usage: "Load an RDB snapshot into a chained hash dictionary and report its layout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Properties file with dictionary and logging settings",
			},
			&cli.StringFlag{
				Name:  "rdb",
				Usage: "RDB file to load, overrides dbfilename",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Write the loaded dictionary back to this RDB file",
			},
			&cli.IntFlag{
				Name:  "bucket-count",
				Usage: "Initial bucket count, overrides bucketcount",
			},
			&cli.BoolFlag{
				Name:  "pool",
				Usage: "Recycle chains through a bucket pool",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("config"); path != "" {
		if err := config.SetupConfigProperties(path); err != nil {
			return err
		}
	}
	props := *config.Properties
	if v := cmd.String("rdb"); v != "" {
		props.RDBFilename = v
	}
	if v := cmd.Int("bucket-count"); v > 0 {
		props.BucketCount = int(v)
	}
	if cmd.Bool("pool") {
		props.BucketPool = true
	}

	err := logger.Setup(&logger.Settings{
		Level:      props.LogLevel,
		Format:     props.LogFormat,
		Filename:   props.LogFile,
		MaxSize:    props.LogMaxSize,
		MaxBackups: props.LogMaxBackups,
		MaxAge:     props.LogMaxAge,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	opts := []dict.Option[string, []byte]{
		dict.WithBucketCount[string, []byte](props.BucketCount),
		dict.WithLogger[string, []byte](logger.L()),
	}
	if props.BucketPool {
		p := dict.NewBucketPool[string, []byte](ctx, props.PoolMaxIdle)
		defer p.Close()
		opts = append(opts, dict.WithBucketPool(p))
	}
	d := dict.NewChainedDictionary(opts...)

	loaded, err := persistent.LoadRDBFile(props.RDBFilename, d)
	if err != nil {
		return err
	}
	logger.Infof("loaded %d objects from %s", loaded, props.RDBFilename)

	s := d.Stats()
	fmt.Printf("entries:       %d\n", s.Entries)
	fmt.Printf("buckets:       %d\n", s.Buckets)
	fmt.Printf("used buckets:  %d\n", s.UsedBuckets)
	fmt.Printf("longest chain: %d\n", s.LongestChain)
	fmt.Printf("load factor:   %.4f\n", s.LoadFactor)
	fmt.Printf("rehashes:      %d\n", s.Rehashes)

	if out := cmd.String("out"); out != "" {
		if err = persistent.SaveRDBFile(out, d); err != nil {
			return err
		}
		logger.Infof("saved %d entries to %s", d.Size(), out)
	}
	return nil
}
