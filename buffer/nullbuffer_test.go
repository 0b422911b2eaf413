package buffer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memtopo/memspace/buffer"
)

var _ = Describe("NullBuffer", func() {
	var b *buffer.NullBuffer

	BeforeEach(func() {
		b = buffer.NewNullBuffer(10)
	})

	It("should report availability up to its size", func() {
		Expect(b.Available(0)).To(Equal(uint64(10)))
		Expect(b.Available(7)).To(Equal(uint64(3)))
		Expect(b.Available(10)).To(Equal(uint64(0)))
		Expect(b.Available(100)).To(Equal(uint64(0)))
	})

	It("should read zero bytes and bound the count to availability", func() {
		dst := []byte{1, 2, 3, 4, 5}

		n := b.Read(dst, 8)

		Expect(n).To(Equal(uint64(2)))
		Expect(dst).To(Equal([]byte{0, 0, 0, 0, 0}))
	})

	It("should read nothing past the end", func() {
		dst := []byte{9, 9}

		n := b.Read(dst, 10)

		Expect(n).To(Equal(uint64(0)))
		Expect(dst).To(Equal([]byte{0, 0}))
	})

	It("should refuse all writes", func() {
		n := b.Write([]byte("abc"), 0)

		Expect(n).To(Equal(uint64(0)))
	})

	It("should accept resizing", func() {
		b.Resize(100)

		Expect(b.Available(0)).To(Equal(uint64(100)))
	})

	It("should expose no raw data", func() {
		Expect(b.Data()).To(BeNil())
	})

	It("should have a distinct identity", func() {
		other := buffer.NewNullBuffer(10)

		Expect(b.ID()).NotTo(BeEmpty())
		Expect(b.ID()).NotTo(Equal(other.ID()))
	})
})
