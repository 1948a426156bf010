package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/CodMac/attr-lens/core"
	"github.com/CodMac/attr-lens/model"
	"github.com/CodMac/attr-lens/parser"
	"github.com/CodMac/attr-lens/processor"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const DefaultCacheSize = 256

// Service 对内存中的源码做单次隔离分析，相同输入的结果由 LRU 缓存复用
type Service struct {
	conv   model.Convention
	cache  *lru.Cache[string, []*model.AttributeBinding]
	logger *zap.Logger
}

func New(conv model.Convention, cacheSize int, logger *zap.Logger) (*Service, error) {
	if err := conv.Validate(); err != nil {
		return nil, err
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lru.New[string, []*model.AttributeBinding](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &Service{conv: conv, cache: cache, logger: logger}, nil
}

func (s *Service) Convention() model.Convention { return s.conv }

// AnalyzeSource 解析 src 并收集绑定。返回值是缓存条目的副本，调用方可自由修改。
func (s *Service) AnalyzeSource(ctx context.Context, lang core.Language, path string, src []byte) ([]*model.AttributeBinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := s.cacheKey(lang, path, src)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug("cache hit", zap.String("path", path), zap.String("language", lang.String()))
		return cloneBindings(cached), nil
	}

	p, err := parser.NewParser(lang)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	unit, err := p.ParseBytes(path, src)
	if err != nil {
		return nil, err
	}
	defer unit.Close()

	bindings, err := processor.Analyze(unit, s.conv, s.logger)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, bindings)
	return cloneBindings(bindings), nil
}

// CacheLen 当前缓存条目数
func (s *Service) CacheLen() int { return s.cache.Len() }

func (s *Service) cacheKey(lang core.Language, path string, src []byte) string {
	sum := sha256.Sum256(src)
	return lang.String() + "|" + s.conv.Key() + "|" + path + "|" + hex.EncodeToString(sum[:])
}

func cloneBindings(in []*model.AttributeBinding) []*model.AttributeBinding {
	out := make([]*model.AttributeBinding, 0, len(in))
	for _, b := range in {
		c := *b
		if b.Location != nil {
			loc := *b.Location
			c.Location = &loc
		}
		out = append(out, &c)
	}
	return out
}
