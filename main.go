package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/CodMac/attr-lens/config"
	"github.com/CodMac/attr-lens/core"
	"github.com/CodMac/attr-lens/logging"
	"github.com/CodMac/attr-lens/model"
	"github.com/CodMac/attr-lens/output"
	"github.com/CodMac/attr-lens/processor"
	"github.com/CodMac/attr-lens/server"
	"github.com/CodMac/attr-lens/service"
	_ "github.com/CodMac/attr-lens/x/golang"
	_ "github.com/CodMac/attr-lens/x/java"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitWithError("执行失败", err)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "attrlens",
		Short:         "从约定式解析器源码中还原隐式属性模式",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "配置文件 (默认 ./attrlens.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "输出调试日志")
	rootCmd.PersistentFlags().String("accessor", model.DefaultAccessor, "属性读取调用名")
	rootCmd.PersistentFlags().String("wrapper-prefix", model.DefaultWrapperPrefix, "包装调用前缀")
	rootCmd.PersistentFlags().String("optional-suffix", model.DefaultOptionalSuffix, "可选属性后缀")
	bindFlags(v, rootCmd, map[string]string{
		"verbose":         "verbose",
		"accessor":        "convention.accessor",
		"wrapper-prefix":  "convention.wrapper_prefix",
		"optional-suffix": "convention.optional_suffix",
	})

	load := func() (*config.Config, error) {
		config.LoadDotEnv()
		return config.Load(v, configFile)
	}

	rootCmd.AddCommand(newScanCmd(v, load))
	rootCmd.AddCommand(newServeCmd(v, load))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newScanCmd(v *viper.Viper, load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "扫描源码目录或文件并导出属性绑定",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			sourcePath := "."
			if len(args) == 1 {
				sourcePath = args[0]
			}
			return runScan(cmd.Context(), cfg, sourcePath, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().String("lang", "java", "分析语言: "+languageList())
	cmd.Flags().String("filter", "", "文件过滤正则 (默认按语言扩展名)")
	cmd.Flags().Int("jobs", 4, "并发数")
	cmd.Flags().String("format", "text", "格式: text, jsonl, yaml, msgpack, mermaid")
	cmd.Flags().String("out", "", "输出目录 (默认标准输出)")
	bindFlags(v, cmd, map[string]string{
		"lang":   "lang",
		"filter": "filter",
		"jobs":   "jobs",
		"format": "format",
		"out":    "out",
	})
	return cmd
}

func newServeCmd(v *viper.Viper, load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 分析服务",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Verbose)
			defer logger.Sync()

			svc, err := service.New(cfg.Convention, cfg.Cache.Size, logger)
			if err != nil {
				return err
			}
			return server.NewServer(svc, logger).Run(cfg.Server.Addr)
		},
	}

	cmd.Flags().String("addr", ":8080", "监听地址")
	cmd.Flags().Int("cache-size", service.DefaultCacheSize, "结果缓存条目数")
	bindFlags(v, cmd, map[string]string{
		"addr":       "server.addr",
		"cache-size": "cache.size",
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "attrlens %s (languages: %s)\n", Version, languageList())
		},
	}
}

func runScan(ctx context.Context, cfg *config.Config, sourcePath string, stdout, stderr io.Writer) error {
	startTime := time.Now()
	logger := logging.New(cfg.Verbose)
	defer logger.Sync()

	outType, err := output.ParseOutType(cfg.Format)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// 1. 扫描文件
	fmt.Fprintf(stderr, "[1/3] 🔍 正在扫描: %s\n", sourcePath)
	lang := core.Language(cfg.Lang)
	files, err := processor.ScanFiles(sourcePath, cfg.Filter, lang)
	if err != nil {
		return fmt.Errorf("扫描文件失败: %w", err)
	}
	fmt.Fprintf(stderr, "    找到 %d 个候选文件\n", len(files))

	// 2. 执行核心分析过程
	fmt.Fprintf(stderr, "[2/3] ⚙️  正在推导属性绑定 (jobs: %d)...\n", cfg.Jobs)
	proc := processor.NewFileProcessor(lang, cfg.Convention, cfg.Jobs, logger)
	report, err := proc.ProcessFiles(ctx, sourcePath, files)
	if err != nil {
		return fmt.Errorf("分析执行失败: %w", err)
	}

	// 3. 执行导出逻辑
	fmt.Fprintf(stderr, "[3/3] 💾 正在写入结果 (%s)...\n", outType)
	n, err := runExport(cfg.Out, outType, report, stdout)
	if err != nil {
		return fmt.Errorf("导出失败: %w", err)
	}

	fmt.Fprintf(stderr, "    ✅ 完成: 绑定=%d, 必填=%d, 运行=%s, 耗时: %v\n",
		n, report.RequiredCount(), report.RunID, time.Since(startTime).Round(time.Millisecond))
	logger.Debug("scan finished", zap.String("run_id", report.RunID), zap.Int("units", len(report.Units)))
	return nil
}

func runExport(outDir string, outType output.OutType, report *model.Report, stdout io.Writer) (n int, err error) {
	if outDir == "" {
		return output.NewExporter(stdout, outType).Export(report)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, err
	}
	f, err := os.Create(filepath.Join(outDir, outType.FileName()))
	if err != nil {
		return 0, err
	}
	defer closeInto(f, &err)
	return output.NewExporter(f, outType).Export(report)
}

// closeInto 关闭 c，并在 *errp 尚为空时记录关闭失败 (写入未刷盘等)
func closeInto(c io.Closer, errp *error) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close output: %w", cerr)
	}
}

// bindFlags 将命令行参数绑定为最高优先级的配置来源
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for flagName, key := range keys {
		flags := cmd.Flags()
		if flags.Lookup(flagName) == nil {
			flags = cmd.PersistentFlags()
		}
		_ = v.BindPFlag(key, flags.Lookup(flagName))
	}
}

func languageList() string {
	s := ""
	for i, l := range core.Languages() {
		if i > 0 {
			s += ", "
		}
		s += l.String()
	}
	return s
}

func exitWithError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}
