package cache

import "context"

// Nop используется, когда redis не настроен: всегда промах, запись игнорируется.
type Nop struct{}

func (Nop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (Nop) SetJSON(context.Context, string, any) error { return nil }

func (Nop) Delete(context.Context, ...string) error { return nil }
