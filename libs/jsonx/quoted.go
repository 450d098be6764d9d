package jsonx

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// quotedIntExtension encodes integer fields of the given kinds as decimal
// strings. It decodes both strings and numbers. Fields tagged `,string`
// are left to the default codec.
type quotedIntExtension struct {
	jsoniter.DummyExtension
	kinds []reflect.Kind
}

func newQuotedIntExtension(kinds ...reflect.Kind) *quotedIntExtension {
	return &quotedIntExtension{kinds: kinds}
}

func (e *quotedIntExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		kind := binding.Field.Type().Kind()
		if !slices.Contains(e.kinds, kind) {
			continue
		}
		tag := binding.Field.Tag().Get("json")
		if tag == "-" || hasOption(tag, "string") {
			continue
		}
		codec := quotedCodecOf(kind)
		if codec == nil {
			continue
		}
		binding.Encoder = codec
		binding.Decoder = codec
	}
}

func hasOption(tag, opt string) bool {
	parts := strings.Split(tag, ",")
	return len(parts) > 1 && slices.Contains(parts[1:], opt)
}

type quotedCodec interface {
	jsoniter.ValEncoder
	jsoniter.ValDecoder
}

func quotedCodecOf(kind reflect.Kind) quotedCodec {
	switch kind {
	case reflect.Int32:
		return signedCodec[int32]{}
	case reflect.Int64:
		return signedCodec[int64]{}
	case reflect.Uint64:
		return unsignedCodec[uint64]{}
	}
	return nil
}

type signedCodec[T ~int32 | ~int64] struct{}

func (signedCodec[T]) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*T)(ptr) == 0
}

func (signedCodec[T]) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(strconv.FormatInt(int64(*(*T)(ptr)), 10))
}

func (signedCodec[T]) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		v, err := strconv.ParseInt(iter.ReadString(), 10, 64)
		if err != nil {
			v = 0
		}
		*(*T)(ptr) = T(v)
	case jsoniter.NumberValue:
		*(*T)(ptr) = T(iter.ReadInt64())
	default:
		iter.Skip()
	}
}

type unsignedCodec[T ~uint64] struct{}

func (unsignedCodec[T]) IsEmpty(ptr unsafe.Pointer) bool {
	return *(*T)(ptr) == 0
}

func (unsignedCodec[T]) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(strconv.FormatUint(uint64(*(*T)(ptr)), 10))
}

func (unsignedCodec[T]) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		v, err := strconv.ParseUint(iter.ReadString(), 10, 64)
		if err != nil {
			v = 0
		}
		*(*T)(ptr) = T(v)
	case jsoniter.NumberValue:
		*(*T)(ptr) = T(iter.ReadUint64())
	default:
		iter.Skip()
	}
}
