// Package textcodec holds the conversions that surround the multiplexer:
// turning text into bytes or characters, and turning a signal or a byte
// slice back into display strings.
//
// None of this is part of the spreading contract. In particular
// BinaryDigits drops leading zero bits of every byte, so
// BinaryDigits([]byte{1, 2}) == "110"; the multiplexer neither causes nor
// compensates for that.
package textcodec
