// Package dispatch 按请求类型把命令/查询路由到唯一的处理函数。
//
// 处理函数在启动时注册到 Registry，Build 校验每个请求类型恰好有一个处理函数，
// 之后 Dispatcher 只做查表和调用，不包含业务逻辑。
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var (
	ErrNoHandler         = errors.New("dispatch: no handler registered")
	ErrDuplicateHandler  = errors.New("dispatch: more than one handler registered")
	ErrUnexpectedHandler = errors.New("dispatch: handler registered for unknown request type")
	ErrResultType        = errors.New("dispatch: unexpected result type")
)

type handlerFunc func(ctx context.Context, req any) (any, error)

// Registry 收集处理函数，非并发安全，只在启动阶段使用
type Registry struct {
	handlers map[reflect.Type][]handlerFunc
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[reflect.Type][]handlerFunc{}}
}

// Handle 为请求类型 Req 注册处理函数
func Handle[Req, Res any](r *Registry, fn func(ctx context.Context, req Req) (Res, error)) {
	t := reflect.TypeFor[Req]()
	r.handlers[t] = append(r.handlers[t], func(ctx context.Context, req any) (any, error) {
		return fn(ctx, req.(Req))
	})
}

// Build 校验注册结果。expected 为全部请求类型的零值样例。
func (r *Registry) Build(expected ...any) (*Dispatcher, error) {
	var errs []error
	want := make(map[reflect.Type]bool, len(expected))
	table := make(map[reflect.Type]handlerFunc, len(expected))

	for _, e := range expected {
		t := reflect.TypeOf(e)
		want[t] = true
		switch hs := r.handlers[t]; len(hs) {
		case 0:
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoHandler, t))
		case 1:
			table[t] = hs[0]
		default:
			errs = append(errs, fmt.Errorf("%w: %s (%d)", ErrDuplicateHandler, t, len(hs)))
		}
	}

	var extra []string
	for t := range r.handlers {
		if !want[t] {
			extra = append(extra, t.String())
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnexpectedHandler, name))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Dispatcher{handlers: table}, nil
}

// Dispatcher 只读的请求路由表
type Dispatcher struct {
	handlers map[reflect.Type]handlerFunc
}

// Send 调用 req 对应的处理函数，处理函数的错误原样返回
func Send[Res any](ctx context.Context, d *Dispatcher, req any) (Res, error) {
	var zero Res
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	h, ok := d.handlers[reflect.TypeOf(req)]
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrNoHandler, req)
	}
	res, err := h(ctx, req)
	if err != nil {
		return zero, err
	}
	out, ok := res.(Res)
	if !ok {
		return zero, fmt.Errorf("%w: %T returned %T, want %s", ErrResultType, req, res, reflect.TypeFor[Res]())
	}
	return out, nil
}
