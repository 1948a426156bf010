package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/CodMac/attr-lens/core"
	"github.com/CodMac/attr-lens/model"
	"github.com/CodMac/attr-lens/parser"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type FileProcessor struct {
	Language    core.Language
	Convention  model.Convention
	Concurrency int
	Logger      *zap.Logger
}

func NewFileProcessor(lang core.Language, conv model.Convention, concurrency int, logger *zap.Logger) *FileProcessor {
	if concurrency <= 0 {
		concurrency = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileProcessor{
		Language:    lang,
		Convention:  conv,
		Concurrency: concurrency,
		Logger:      logger,
	}
}

// ProcessFiles 并行分析全部文件，结果顺序与 filePaths 一致。任一文件失败则整次运行失败，不返回部分报告。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, rootPath string, filePaths []string) (*model.Report, error) {
	if err := fp.Convention.Validate(); err != nil {
		return nil, err
	}

	absRoot, _ := filepath.Abs(rootPath)
	units := make([]*model.UnitReport, len(filePaths))

	err := fp.runParallel(ctx, filePaths, func(idx int, path string, p *parser.TreeSitterParser) error {
		// 归一化位置信息：报告与违规信息使用同一相对路径
		relPath := path
		if rPath, err := relativeTo(absRoot, path); err == nil {
			relPath = rPath
		}

		unit, err := p.ParseFile(path)
		if err != nil {
			return err
		}
		defer unit.Close()

		bindings, err := Analyze(unit, fp.Convention, fp.Logger)
		if err != nil {
			if v, ok := core.AsViolation(err); ok {
				v.FilePath = relPath
				if v.Location != nil {
					v.Location.FilePath = relPath
				}
			}
			return err
		}

		for _, b := range bindings {
			if b.Location != nil {
				b.Location.FilePath = relPath
			}
		}

		units[idx] = &model.UnitReport{FilePath: relPath, Bindings: bindings}
		fp.Logger.Info("analyzed", zap.String("file", relPath), zap.Int("bindings", len(bindings)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.Report{
		RunID:      uuid.NewString(),
		Language:   fp.Language.String(),
		Convention: fp.Convention,
		Units:      units,
	}, nil
}

// Analyze 对一个已解析的编译单元运行 BindingCollector
func Analyze(unit *core.CompilationUnit, conv model.Convention, logger *zap.Logger) ([]*model.AttributeBinding, error) {
	grammar, err := core.GetGrammar(unit.Language)
	if err != nil {
		return nil, err
	}
	sm := core.NewSyntaxModel(unit, grammar)
	return core.NewBindingCollector(conv, logger).Collect(sm)
}

// runParallel 内部并发调度器：每个 worker 持有独立的解析器，首个错误取消其余任务
func (fp *FileProcessor) runParallel(ctx context.Context, paths []string, task func(int, string, *parser.TreeSitterParser) error) error {
	type job struct {
		idx  int
		path string
	}

	jobs := make(chan job, len(paths))
	for i, p := range paths {
		jobs <- job{idx: i, path: p}
	}
	close(jobs)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < fp.Concurrency; i++ {
		g.Go(func() error {
			p, err := parser.NewParser(fp.Language)
			if err != nil {
				return err
			}
			defer p.Close()

			for j := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := task(j.idx, j.path, p); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// ScanFiles 遍历 root 收集匹配 filter 的文件；filter 为空时按语言扩展名匹配
func ScanFiles(root, filter string, lang core.Language) ([]string, error) {
	if filter == "" {
		filter = fmt.Sprintf(`.*\.%s$`, lang)
	}
	re, err := regexp.Compile(filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInputUnavailable, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && re.MatchString(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func relativeTo(absRoot, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if absPath == absRoot {
		return filepath.Base(absPath), nil
	}
	return filepath.Rel(absRoot, absPath)
}
