package linelang

type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindNumber
)

// Value is a closed variant over string, boolean and number.
type Value struct {
	kind Kind
	text string
	num  float64
	bit  bool
}

func Str(text string) Value {
	return Value{
		kind: KindString,
		text: text,
	}
}

func Bool(bit bool) Value {
	return Value{
		kind: KindBool,
		bit:  bit,
	}
}

func Num(num float64) Value {
	return Value{
		kind: KindNumber,
		num:  num,
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Bool() bool {
	return v.bit
}

func (v Value) Num() float64 {
	return v.num
}
