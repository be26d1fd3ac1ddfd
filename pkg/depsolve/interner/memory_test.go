package interner_test

import (
	"slices"
	"testing"

	"github.com/Masterminds/semver/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/depsolve/depsolve/pkg/depsolve"
	"github.com/depsolve/depsolve/pkg/depsolve/interner"
)

func TestMemoryInterner(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MemoryInterner Suite")
}

func constraint(text string) *semver.Constraints {
	c, err := semver.NewConstraint(text)
	Expect(err).ToNot(HaveOccurred())
	return c
}

var _ = Describe("MemoryInterner", func() {
	var in *interner.MemoryInterner

	BeforeEach(func() {
		in = interner.NewMemoryInterner()
	})

	Describe("strings", func() {
		It("should return the same ID for the same string", func() {
			id := in.InternString("numpy")
			Expect(in.InternString("numpy")).To(Equal(id))
		})
		It("should return different IDs for different strings", func() {
			Expect(in.InternString("numpy")).ToNot(Equal(in.InternString("numpy-lite")))
		})
		It("should display the interned string", func() {
			id := in.InternString("numpy")
			Expect(in.DisplayName(id)).To(Equal("numpy"))
		})
	})

	Describe("version sets", func() {
		It("should deduplicate on name and constraint", func() {
			name := in.InternString("numpy")
			id := in.InternVersionSet(name, constraint(">=1.20"))
			Expect(in.InternVersionSet(name, constraint(">=1.20"))).To(Equal(id))
		})
		It("should distinguish different constraints on one name", func() {
			name := in.InternString("numpy")
			a := in.InternVersionSet(name, constraint(">=1.20"))
			b := in.InternVersionSet(name, constraint("<2.0"))
			Expect(a).ToNot(Equal(b))
		})
		It("should distinguish the same constraint on different names", func() {
			c := ">=1.0"
			a := in.InternVersionSet(in.InternString("numpy"), constraint(c))
			b := in.InternVersionSet(in.InternString("numpy-lite"), constraint(c))
			Expect(a).ToNot(Equal(b))
		})
		It("should resolve name and constraint text", func() {
			name := in.InternString("numpy")
			id := in.InternVersionSet(name, constraint(">=1.20"))
			Expect(in.VersionSetName(id)).To(Equal(name))
			Expect(in.DisplayVersionSet(id)).To(Equal(">=1.20"))
		})
		It("should check versions against the constraint", func() {
			id := in.InternVersionSet(in.InternString("numpy"), constraint(">=1.20"))
			Expect(in.Check(id, semver.MustParse("1.21.0"))).To(BeTrue())
			Expect(in.Check(id, semver.MustParse("1.19.0"))).To(BeFalse())
		})
	})

	Describe("unions", func() {
		var v1, v2, v3 depsolve.VersionSetID

		BeforeEach(func() {
			v1 = in.InternVersionSet(in.InternString("numpy"), constraint(">=1.20"))
			v2 = in.InternVersionSet(in.InternString("numpy-lite"), constraint(">=1.0"))
			v3 = in.InternVersionSet(in.InternString("cuda"), constraint(">=11.0"))
		})

		It("should preserve member order", func() {
			u := in.InternVersionSetUnion(v3, v1, v2)
			Expect(slices.Collect(in.VersionSetsInUnion(u))).To(Equal([]depsolve.VersionSetID{v3, v1, v2}))
		})
		It("should deduplicate identical member sequences", func() {
			Expect(in.InternVersionSetUnion(v1, v2)).To(Equal(in.InternVersionSetUnion(v1, v2)))
		})
		It("should distinguish member order", func() {
			Expect(in.InternVersionSetUnion(v1, v2)).ToNot(Equal(in.InternVersionSetUnion(v2, v1)))
		})
		It("should yield a stable sequence across iterations", func() {
			u := in.InternVersionSetUnion(v1, v2, v3)
			seq := in.VersionSetsInUnion(u)
			Expect(slices.Collect(seq)).To(Equal(slices.Collect(seq)))
		})
		It("should expand through a union requirement", func() {
			u := in.InternVersionSetUnion(v1, v2)
			Expect(slices.Collect(depsolve.Union(u).VersionSets(in))).To(Equal([]depsolve.VersionSetID{v1, v2}))
		})
		It("should render a union requirement", func() {
			u := in.InternVersionSetUnion(v1, v2)
			Expect(depsolve.Union(u).Display(in)).To(Equal("numpy >=1.20 | numpy-lite >=1.0"))
		})
	})
})
