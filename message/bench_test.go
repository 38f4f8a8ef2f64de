package message

import "testing"

func BenchmarkMarshalOptions(b *testing.B) {
	options, err := Options{}.SetPath("a/b/c")
	if err != nil {
		b.Fatalf("unexpected error %v", err)
	}
	options = options.Add(ContentFormatOption{Format: AppCBOR})
	options = options.Add(Block2Option{Block: Block{Num: 1024, SZX: SZX1024}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := options.Marshal(); err != nil {
			b.Fatalf("unexpected error %v", err)
		}
	}
}

func BenchmarkParseOptions(b *testing.B) {
	data := []byte{177, 97, 1, 98, 1, 99, 17, 60, 0xb2, 0x40, 0x06}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		options, _, err := ParseOptions(data, DefaultParser())
		if err != nil {
			b.Fatalf("unexpected error %v", err)
		}
		if len(options) != 5 {
			b.Fatalf("unexpected length %d", len(options))
		}
	}
}
