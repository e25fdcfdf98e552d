package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/storage"
)

var errStorageUnavailable = errors.New("storage not available")

// Dispatch runs one calculator method. Operands are number strings in
// either parse form, or "$name" to read a stored register.
func Dispatch(custom *config.Custom, store storage.Store, method string, params []interface{}) (interface{}, error) {
	c := &calculator{custom: custom, store: store}
	switch method {
	case "parse":
		return c.unary(params, func(a common.Rational) (common.Rational, error) { return a, nil })
	case "add":
		return c.fold(params, common.Rational.Sum)
	case "sub":
		return c.fold(params, common.Rational.Difference)
	case "mul":
		return c.fold(params, common.Rational.Product)
	case "div":
		return c.fold(params, common.Rational.Quotient)
	case "reciprocal":
		return c.unary(params, common.Rational.Reciprocal)
	case "percentage":
		return c.unary(params, common.Rational.ApplyPercentage)
	case "percentageof":
		return c.binary(params, common.Rational.PercentageOf)
	case "pow":
		return c.binary(params, common.Rational.PowRat)
	case "compare":
		return c.compare(params)
	case "decimal":
		return c.decimal(params)
	case "range":
		return c.sequence(params)
	case "setvalue":
		return c.setValue(params)
	case "getvalue":
		return c.getValue(params)
	case "removevalue":
		return c.removeValue(params)
	case "listvalues":
		return c.listValues(params)
	case "savesequence":
		return c.saveSequence(params)
	case "getsequence":
		return c.getSequence(params)
	}
	return nil, fmt.Errorf("invalid method %s", method)
}

type calculator struct {
	custom *config.Custom
	store  storage.Store
}

func (c *calculator) view(r common.Rational) map[string]interface{} {
	view := map[string]interface{}{
		"value":       r.String(),
		"numerator":   r.Num(),
		"denominator": r.Denom(),
	}
	scale := c.custom.Number.Scale
	d, err := r.DecimalRound(scale, c.custom.Number.Rounding)
	if err == nil {
		view["decimal"] = d.StringFixed(scale)
	}
	return view
}

func (c *calculator) unary(params []interface{}, op func(common.Rational) (common.Rational, error)) (interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	a, err := c.operand(params[0])
	if err != nil {
		return nil, err
	}
	v, err := op(a)
	if err != nil {
		return nil, err
	}
	return c.view(v), nil
}

func (c *calculator) binary(params []interface{}, op func(common.Rational, common.Rational) (common.Rational, error)) (interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	ops, err := c.operands(params)
	if err != nil {
		return nil, err
	}
	v, err := op(ops[0], ops[1])
	if err != nil {
		return nil, err
	}
	return c.view(v), nil
}

func (c *calculator) fold(params []interface{}, op func(common.Rational, ...common.Rational) (common.Rational, error)) (interface{}, error) {
	if len(params) < 2 {
		return nil, errors.New("invalid params count")
	}
	ops, err := c.operands(params)
	if err != nil {
		return nil, err
	}
	v, err := op(ops[0], ops[1:]...)
	if err != nil {
		return nil, err
	}
	return c.view(v), nil
}

func (c *calculator) compare(params []interface{}) (interface{}, error) {
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	ops, err := c.operands(params)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"result": ops[0].Cmp(ops[1])}, nil
}

// decimal takes the value, then an optional scale and rounding mode which
// default to the configured ones.
func (c *calculator) decimal(params []interface{}) (interface{}, error) {
	if len(params) < 1 || len(params) > 3 {
		return nil, errors.New("invalid params count")
	}
	a, err := c.operand(params[0])
	if err != nil {
		return nil, err
	}
	scale, mode := c.custom.Number.Scale, c.custom.Number.Rounding
	if len(params) > 1 {
		s, err := strconv.ParseInt(paramString(params[1]), 10, 32)
		if err != nil || s < 0 || s > int64(c.custom.Number.MaxScale) {
			return nil, fmt.Errorf("invalid scale %v, expected 0 to %d", params[1], c.custom.Number.MaxScale)
		}
		scale = int32(s)
	}
	if len(params) > 2 {
		mode, err = common.ParseRoundingMode(paramString(params[2]))
		if err != nil {
			return nil, err
		}
	}
	d, err := a.DecimalRound(scale, mode)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"value": d.StringFixed(scale), "scale": scale, "rounding": mode.String()}, nil
}

func (c *calculator) rangeOf(params []interface{}) ([]common.Rational, error) {
	if len(params) != 2 && len(params) != 3 {
		return nil, errors.New("invalid params count")
	}
	ops, err := c.operands(params)
	if err != nil {
		return nil, err
	}
	step := common.One
	if len(ops) == 3 {
		step = ops[2]
	}
	return common.RangeN(ops[0], ops[1], step, c.custom.Range.MaxSize)
}

func (c *calculator) sequence(params []interface{}) (interface{}, error) {
	seq, err := c.rangeOf(params)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		seq = []common.Rational{}
	}
	return seq, nil
}

func (c *calculator) setValue(params []interface{}) (interface{}, error) {
	if c.store == nil {
		return nil, errStorageUnavailable
	}
	if len(params) != 2 {
		return nil, errors.New("invalid params count")
	}
	v, err := c.operand(params[1])
	if err != nil {
		return nil, err
	}
	name, err := c.store.WriteValue(paramString(params[0]), v)
	if err != nil {
		return nil, err
	}
	view := c.view(v)
	view["name"] = name
	return view, nil
}

func (c *calculator) getValue(params []interface{}) (interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	v, err := c.register(paramString(params[0]))
	if err != nil {
		return nil, err
	}
	return c.view(v), nil
}

func (c *calculator) removeValue(params []interface{}) (interface{}, error) {
	if c.store == nil {
		return nil, errStorageUnavailable
	}
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name := paramString(params[0])
	err := c.store.RemoveValue(name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name}, nil
}

func (c *calculator) listValues(params []interface{}) (interface{}, error) {
	if c.store == nil {
		return nil, errStorageUnavailable
	}
	if len(params) > 1 {
		return nil, errors.New("invalid params count")
	}
	var prefix string
	if len(params) == 1 {
		prefix = paramString(params[0])
	}
	return c.store.ListValues(prefix)
}

// saveSequence takes a name followed by the range params.
func (c *calculator) saveSequence(params []interface{}) (interface{}, error) {
	if c.store == nil {
		return nil, errStorageUnavailable
	}
	if len(params) < 1 {
		return nil, errors.New("invalid params count")
	}
	seq, err := c.rangeOf(params[1:])
	if err != nil {
		return nil, err
	}
	name, err := c.store.WriteSequence(paramString(params[0]), seq)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"name": name, "size": len(seq)}, nil
}

func (c *calculator) getSequence(params []interface{}) (interface{}, error) {
	if c.store == nil {
		return nil, errStorageUnavailable
	}
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	name := paramString(params[0])
	seq, err := c.store.ReadSequence(name)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, fmt.Errorf("sequence %s not found", name)
	}
	return seq, nil
}

func (c *calculator) operands(params []interface{}) ([]common.Rational, error) {
	ops := make([]common.Rational, len(params))
	for i, p := range params {
		v, err := c.operand(p)
		if err != nil {
			return nil, err
		}
		ops[i] = v
	}
	return ops, nil
}

func (c *calculator) operand(p interface{}) (common.Rational, error) {
	s := strings.TrimSpace(paramString(p))
	if strings.HasPrefix(s, "$") {
		return c.register(s[1:])
	}
	return common.Parse(s)
}

func (c *calculator) register(name string) (common.Rational, error) {
	if c.store == nil {
		return common.Rational{}, errStorageUnavailable
	}
	v, err := c.store.ReadValue(name)
	if err != nil {
		return common.Rational{}, err
	}
	if v == nil {
		return common.Rational{}, fmt.Errorf("value %s not found", name)
	}
	return *v, nil
}

func paramString(p interface{}) string {
	switch v := p.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case nil:
		return ""
	}
	return fmt.Sprint(p)
}
