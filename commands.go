package shapeset

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/shapeset/blobstore"
	minios "github.com/hupe1980/shapeset/blobstore/minio"
	s3s "github.com/hupe1980/shapeset/blobstore/s3"
	"github.com/hupe1980/shapeset/catalog"
)

// StoreConfig selects the blob store backing a command tree.
type StoreConfig struct {
	// Type is "local" (default), "s3" or "minio".
	Type string `yaml:"type"`
	// Bucket and Prefix locate the dataset on s3/minio stores.
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	// Endpoint, AccessKey and SecretKey configure minio stores.
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	// CacheDir, when set, spills remote blobs into a local cache.
	CacheDir string `yaml:"cache_dir"`
}

// Config configures the dataset a command tree operates on.
type Config struct {
	// RootDir is the dataset root directory (or store-relative prefix).
	RootDir string `yaml:"root_dir"`
	// ModelFile overrides the per-model file name. Default "model.obj".
	ModelFile string `yaml:"model_file"`
	// Seed fixes the sampling seed for reproducible draws.
	Seed  *int64      `yaml:"seed"`
	Store StoreConfig `yaml:"store"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) buildStore(ctx context.Context) (blobstore.BlobStore, error) {
	var store blobstore.BlobStore

	switch cfg.Store.Type {
	case "", "local":
		return nil, nil // Open defaults to a LocalStore at RootDir

	case "s3":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		store = s3s.NewStore(awss3.NewFromConfig(awsCfg), cfg.Store.Bucket, cfg.Store.Prefix)

	case "minio":
		client, err := miniogo.New(cfg.Store.Endpoint, &miniogo.Options{
			Creds:  credentials.NewStaticV4(cfg.Store.AccessKey, cfg.Store.SecretKey, ""),
			Secure: cfg.Store.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		store = minios.NewStore(client, cfg.Store.Bucket, cfg.Store.Prefix)

	default:
		return nil, fmt.Errorf("%w: unknown store type %q", ErrInvalidArgument, cfg.Store.Type)
	}

	if cfg.Store.CacheDir != "" {
		store = blobstore.NewCachingStore(store, cfg.Store.CacheDir)
	}
	return store, nil
}

func (cfg Config) options() []Option {
	var opts []Option
	if cfg.ModelFile != "" {
		opts = append(opts, WithModelFile(cfg.ModelFile))
	}
	if cfg.Seed != nil {
		opts = append(opts, WithRandomSeed(*cfg.Seed))
	}
	return opts
}

// NewCommand creates a Cobra command tree for dataset inspection and
// sampling. The returned command can be added to a parent CLI's root command.
//
// Commands provided:
//   - dataset info
//   - dataset categories
//   - dataset sample [--category ... --num ... | --model-id ... | --idx ...]
//   - dataset manifest <out>
func NewCommand(cfg Config, optFns ...Option) *cobra.Command {
	// Dataset is opened in PersistentPreRunE so that help never touches
	// storage.
	var ds *Dataset

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect and sample a ShapeNet-style dataset",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			ctx := cmd.Context()
			store, err := cfg.buildStore(ctx)
			if err != nil {
				return err
			}

			opts := append(cfg.options(), optFns...)
			if store != nil {
				opts = append(opts, WithStore(store))
			}

			ds, err = Open(ctx, cfg.RootDir, opts...)
			if err != nil {
				return fmt.Errorf("failed to open dataset: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(infoCmd(&ds))
	cmd.AddCommand(categoriesCmd(&ds))
	cmd.AddCommand(sampleCmd(&ds))
	cmd.AddCommand(manifestCmd(&ds))

	return cmd
}

func infoCmd(ds **Dataset) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show dataset summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := (*ds).Catalog()
			fmt.Fprintf(cmd.OutOrStdout(), "models:   %d\n", c.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "synsets:  %d\n", len(c.Synsets()))
			fmt.Fprintf(cmd.OutOrStdout(), "aliases:  %d\n", len(c.Aliases()))
			return nil
		},
	}
}

func categoriesCmd(ds **Dataset) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List synsets with their index ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := (*ds).Catalog()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYNSET\tSTART\tCOUNT")
			for _, synset := range c.Synsets() {
				members, _ := c.Members(synset)
				run, _ := c.Run(synset)
				fmt.Fprintf(w, "%s\t%d\t%d\n", synset, run.Start, members.GetCardinality())
			}
			return w.Flush()
		},
	}
}

func sampleCmd(ds **Dataset) *cobra.Command {
	var (
		modelIDs   []string
		categories []string
		sampleNums []int
		idxs       []int
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Resolve a selector and print the selected model paths",
		Long: "Resolve explicit model ids, category draws, explicit indices or a " +
			"random draw from the whole dataset into model file paths.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := (*ds).Paths(cmd.Context(), Selector{
				ModelIDs:   modelIDs,
				Categories: categories,
				SampleNums: sampleNums,
				Idxs:       idxs,
			})
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&modelIDs, "model-id", nil, "Explicit model ids")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Categories to draw from (labels or synset ids)")
	cmd.Flags().IntSliceVarP(&sampleNums, "num", "n", nil, "Sample counts, one per category or one to broadcast")
	cmd.Flags().IntSliceVar(&idxs, "idx", nil, "Explicit catalog indices")
	return cmd
}

func manifestCmd(ds **Dataset) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <out>",
		Short: "Write the catalog manifest (compressed by .zst/.lz4 extension)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalog.Save(args[0], (*ds).Catalog(), nil)
		},
	}
}
