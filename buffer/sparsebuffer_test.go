package buffer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/memtopo/memspace/buffer"
)

var _ = Describe("SparseBuffer", func() {
	var b *buffer.SparseBuffer

	BeforeEach(func() {
		b = buffer.NewSparseBuffer(1 << 20)
	})

	It("should read and write within a single page", func() {
		b.Write([]byte{1, 2, 3, 4}, 0)

		dst := make([]byte, 2)
		Expect(b.Read(dst, 0)).To(Equal(uint64(2)))
		Expect(dst).To(Equal([]byte{1, 2}))

		Expect(b.Read(dst, 1)).To(Equal(uint64(2)))
		Expect(dst).To(Equal([]byte{2, 3}))
	})

	It("should read and write across page boundaries", func() {
		b.Write([]byte{1, 2, 3, 4}, 4094)

		dst := make([]byte, 4)
		Expect(b.Read(dst, 4094)).To(Equal(uint64(4)))
		Expect(dst).To(Equal([]byte{1, 2, 3, 4}))
	})

	It("should read untouched regions as zero", func() {
		dst := []byte{9, 9, 9, 9}

		Expect(b.Read(dst, 8192)).To(Equal(uint64(4)))
		Expect(dst).To(Equal([]byte{0, 0, 0, 0}))
	})

	It("should clip transfers at the capacity", func() {
		small := buffer.NewSparseBuffer(10)

		Expect(small.Write([]byte("abcdef"), 8)).To(Equal(uint64(2)))
		Expect(small.Available(10)).To(Equal(uint64(0)))

		dst := make([]byte, 6)
		Expect(small.Read(dst, 8)).To(Equal(uint64(2)))
		Expect(dst[:2]).To(Equal([]byte("ab")))
	})

	It("should support resizing", func() {
		b.Write([]byte{1, 2, 3, 4}, 0)
		b.Resize(2)

		Expect(b.Available(0)).To(Equal(uint64(2)))

		dst := make([]byte, 4)
		Expect(b.Read(dst, 0)).To(Equal(uint64(2)))
		Expect(dst[:2]).To(Equal([]byte{1, 2}))
	})

	It("should expose no raw data", func() {
		Expect(b.Data()).To(BeNil())
	})
})
