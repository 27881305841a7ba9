package serializer

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/redhat-data-and-ai/profilemanager/pkg/profile"
	"github.com/redhat-data-and-ai/profilemanager/pkg/store"
)

// profileTuple is the comparable shape of a stored profile
type profileTuple struct {
	ID      int
	Name    string
	Age     int
	City    string
	Country string
	Hobbies []string
}

func snapshot(s store.ProfileStoreInterface) []profileTuple {
	out := make([]profileTuple, 0, s.Size())
	for _, id := range s.ListIDs() {
		p, _ := s.Find(id)
		out = append(out, profileTuple{
			ID:      p.ID(),
			Name:    p.Name(),
			Age:     p.Age(),
			City:    p.City(),
			Country: p.Country(),
			Hobbies: p.Hobbies(),
		})
	}
	return out
}

func writeFile(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
	return path
}

var _ = Describe("Profile serializer", func() {
	var (
		ctx context.Context
		s   *store.Store
		dir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = store.New()
		dir = GinkgoT().TempDir()
	})

	Context("When saving", func() {
		It("writes the header and one escaped line per profile in id order", func() {
			By("populating the store out of id order")
			Expect(s.Insert(profile.New(3, "Grace", 85, "Arlington", "US"))).To(BeTrue())
			ada := profile.New(1, "Ada\tLovelace", 36, "London|City", "UK\\GB")
			ada.AddHobby("Gym|Weights")
			ada.AddHobby("Reading")
			Expect(s.Insert(ada)).To(BeTrue())

			path := filepath.Join(dir, "profiles.txt")
			Expect(Save(ctx, s, path)).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(
				"PMCLI1\n" +
					"1\t36\tAda\\tLovelace\tLondon\\|City\tUK\\\\GB\tGym\\|Weights|Reading\n" +
					"3\t85\tGrace\tArlington\tUS\t\n",
			))
		})

		It("writes only the header for an empty store", func() {
			var buf bytes.Buffer
			Expect(Write(ctx, &buf, s)).To(Succeed())
			Expect(buf.String()).To(Equal("PMCLI1\n"))
		})

		It("truncates existing content", func() {
			path := writeFile(dir, "profiles.txt", strings.Repeat("stale content\n", 50))
			s.Create("Ada", 36, "London", "UK")

			Expect(Save(ctx, s, path)).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("PMCLI1\n1\t36\tAda\tLondon\tUK\t\n"))
		})

		It("fails when the destination cannot be opened", func() {
			path := filepath.Join(dir, "missing-dir", "profiles.txt")
			err := Save(ctx, s, path)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
		})
	})

	Context("When round-tripping", func() {
		It("reproduces every profile after save, clear and load", func() {
			awkward := []string{"back\\slash", "tab\there", "new\nline", "pi|pe", "\\|\t\n", "trailing\\"}

			for i, text := range awkward {
				id := s.Create(text, i-2, "city "+text, text+" country")
				p, _ := s.Find(id)
				for _, h := range awkward {
					p.AddHobby(h)
				}
			}
			s.Create("No Hobbies", 0, "", "")
			Expect(s.Insert(profile.New(100, "Far", 1<<31-1, "Away", "Land"))).To(BeTrue())

			before := snapshot(s)
			path := filepath.Join(dir, "roundtrip.txt")
			Expect(Save(ctx, s, path)).To(Succeed())

			s.Clear()
			Expect(s.Size()).To(BeZero())

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Loaded).To(Equal(len(before)))
			Expect(summary.Skipped()).To(BeZero())
			Expect(snapshot(s)).To(Equal(before))
		})

		It("writes byte-identical files for the same profiles", func() {
			p := profile.New(4, "Ada", 36, "London", "UK")
			p.AddHobby("A|B")
			Expect(s.Insert(p)).To(BeTrue())

			first := filepath.Join(dir, "first.txt")
			second := filepath.Join(dir, "second.txt")
			Expect(Save(ctx, s, first)).To(Succeed())
			_, err := Load(ctx, s, first)
			Expect(err).NotTo(HaveOccurred())
			Expect(Save(ctx, s, second)).To(Succeed())

			a, err := os.ReadFile(first)
			Expect(err).NotTo(HaveOccurred())
			b, err := os.ReadFile(second)
			Expect(err).NotTo(HaveOccurred())
			Expect(b).To(Equal(a))
		})
	})

	Context("When loading", func() {
		It("skips lines with too few fields", func() {
			path := writeFile(dir, "short.txt", "PMCLI1\n1\t36\tAda\tLondon\tUK\tChess\n2\t40\tBob\n")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Size()).To(Equal(1))
			Expect(summary.Loaded).To(Equal(1))
			Expect(summary.Malformed).To(Equal(1))

			p, ok := s.Find(1)
			Expect(ok).To(BeTrue())
			Expect(p.Name()).To(Equal("Ada"))
			Expect(p.Hobbies()).To(Equal([]string{"Chess"}))
		})

		It("accepts five fields without a hobby block", func() {
			path := writeFile(dir, "five.txt", "PMCLI1\n9\t20\tEve\tParis\tFR\n")

			_, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())

			p, ok := s.Find(9)
			Expect(ok).To(BeTrue())
			Expect(p.Hobbies()).To(BeEmpty())
		})

		It("skips records whose id or age is not an integer and continues", func() {
			path := writeFile(dir, "numbers.txt",
				"PMCLI1\n"+
					"x\t36\tBad Id\tA\tB\t\n"+
					"2\told\tBad Age\tA\tB\t\n"+
					"3\t-7\tGood\tA\tB\t\n")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Malformed).To(Equal(2))
			Expect(s.ListIDs()).To(Equal([]int{3}))

			p, _ := s.Find(3)
			Expect(p.Age()).To(Equal(-7))
		})

		It("reads numbers with leading blanks or trailing characters", func() {
			path := writeFile(dir, "lenient.txt",
				"PMCLI1\n"+
					" 5\t30\tLeading\tA\tB\t\n"+
					"6 \t31 \tTrailing\tA\tB\t\n"+
					"7abc\t32yrs\tSuffix\tA\tB\t\n")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Loaded).To(Equal(3))
			Expect(summary.Malformed).To(BeZero())
			Expect(s.ListIDs()).To(Equal([]int{5, 6, 7}))

			p, _ := s.Find(7)
			Expect(p.Age()).To(Equal(32))
		})

		It("skips ids outside the 32-bit range so allocation cannot overflow", func() {
			path := writeFile(dir, "huge.txt",
				"PMCLI1\n"+
					"9223372036854775807\t30\tMax\tA\tB\t\n"+
					"2147483648\t30\tJustOver\tA\tB\t\n"+
					"2147483647\t30\tInt32Max\tA\tB\t\n")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Malformed).To(Equal(2))
			Expect(s.ListIDs()).To(Equal([]int{2147483647}))
			Expect(s.Create("next", 1, "", "")).To(Equal(2147483648))
		})

		It("keeps the first occurrence of a duplicate id", func() {
			path := writeFile(dir, "dupes.txt",
				"PMCLI1\n"+
					"5\t1\tFirst\tA\tB\t\n"+
					"5\t2\tSecond\tC\tD\t\n")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Loaded).To(Equal(1))
			Expect(summary.Duplicates).To(Equal(1))

			p, _ := s.Find(5)
			Expect(p.Name()).To(Equal("First"))
		})

		It("strips carriage returns and skips blank lines", func() {
			path := writeFile(dir, "crlf.txt", "PMCLI1\r\n\r\n1\t36\tAda\tLondon\tUK\tChess|Go\r\n\n")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Blank).To(Equal(2))

			p, ok := s.Find(1)
			Expect(ok).To(BeTrue())
			Expect(p.Hobbies()).To(Equal([]string{"Chess", "Go"}))
		})

		It("reads a final line without a trailing newline", func() {
			path := writeFile(dir, "nonl.txt", "PMCLI1\n1\t36\tAda\tLondon\tUK\tChess")

			_, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Size()).To(Equal(1))
		})

		It("drops empty hobby tokens", func() {
			path := writeFile(dir, "empty-hobbies.txt", "PMCLI1\n1\t36\tAda\tLondon\tUK\t|Chess||\n")

			_, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())

			p, _ := s.Find(1)
			Expect(p.Hobbies()).To(Equal([]string{"Chess"}))
		})

		It("ignores fields after the hobby block", func() {
			path := writeFile(dir, "extra.txt", "PMCLI1\n1\t36\tAda\tLondon\tUK\tChess\tignored\n")

			_, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())

			p, _ := s.Find(1)
			Expect(p.Hobbies()).To(Equal([]string{"Chess"}))
		})

		It("replaces existing contents and moves id allocation past loaded ids", func() {
			s.Create("Old", 1, "", "")
			s.Create("Older", 2, "", "")
			path := writeFile(dir, "replace.txt", "PMCLI1\n10\t36\tAda\tLondon\tUK\t\n")

			_, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.ListIDs()).To(Equal([]int{10}))
			Expect(s.Create("Next", 1, "", "")).To(Equal(11))
		})

		It("accepts a header-only file and empties the store", func() {
			s.Create("Old", 1, "", "")
			path := writeFile(dir, "header-only.txt", "PMCLI1")

			summary, err := Load(ctx, s, path)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Loaded).To(BeZero())
			Expect(s.Size()).To(BeZero())
		})
	})

	Context("When loading fails", func() {
		var before []profileTuple

		BeforeEach(func() {
			id := s.Create("Ada", 36, "London", "UK")
			p, _ := s.Find(id)
			p.AddHobby("Chess")
			s.Create("Grace", 85, "Arlington", "US")
			before = snapshot(s)
		})

		DescribeTable("leaves the populated store unchanged",
			func(content string) {
				path := writeFile(dir, "bad.txt", content)

				summary, err := Load(ctx, s, path)
				Expect(err).To(MatchError(ErrInvalidHeader))
				Expect(summary).To(BeNil())
				Expect(snapshot(s)).To(Equal(before))
			},
			Entry("wrong version", "PMCLI0\n1\t36\tEve\tParis\tFR\t\n"),
			Entry("missing header", "1\t36\tEve\tParis\tFR\t\n"),
			Entry("empty file", ""),
			Entry("header with trailing space", "PMCLI1 \n"),
		)

		It("reports a missing file", func() {
			summary, err := Load(ctx, s, filepath.Join(dir, "nope.txt"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
			Expect(summary).To(BeNil())
			Expect(snapshot(s)).To(Equal(before))
		})
	})

	Context("When decoding a single record", func() {
		It("unescapes text fields and splits hobbies on bare pipes only", func() {
			p, err := DecodeRecord("7\t30\tA\\tB\tC\\nD\tE\\\\F\tGym\\|Weights|Reading")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID()).To(Equal(7))
			Expect(p.Name()).To(Equal("A\tB"))
			Expect(p.City()).To(Equal("C\nD"))
			Expect(p.Country()).To(Equal("E\\F"))
			Expect(p.Hobbies()).To(Equal([]string{"Gym|Weights", "Reading"}))
		})

		DescribeTable("parses the id the way older files were written",
			func(field string, wantID int) {
				p, err := DecodeRecord(field + "\t30\tA\tB\tC\t")
				Expect(err).NotTo(HaveOccurred())
				Expect(p.ID()).To(Equal(wantID))
			},
			Entry("plain", "5", 5),
			Entry("leading space", " 5", 5),
			Entry("trailing space", "5 ", 5),
			Entry("trailing letters", "5abc", 5),
			Entry("explicit plus", "+5", 5),
			Entry("negative", "-5", -5),
			Entry("negative with leading space", "  -12x", -12),
			Entry("int32 max", "2147483647", 2147483647),
			Entry("int32 min", "-2147483648", -2147483648),
		)

		DescribeTable("rejects ids that do not start with a 32-bit number",
			func(field string) {
				_, err := DecodeRecord(field + "\t30\tA\tB\tC\t")
				Expect(err).To(MatchError(ContainSubstring("invalid id")))
				Expect(errors.Is(err, errMalformedRecord)).To(BeTrue())
			},
			Entry("empty", ""),
			Entry("letters first", "abc5"),
			Entry("blank", "   "),
			Entry("sign only", "-"),
			Entry("sign then space", "- 5"),
			Entry("above int32", "2147483648"),
			Entry("below int32", "-2147483649"),
			Entry("int64 max", "9223372036854775807"),
		)

		It("applies the same rules to the age", func() {
			p, err := DecodeRecord("1\t 42years\tA\tB\tC\t")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Age()).To(Equal(42))

			_, err = DecodeRecord("1\t4294967296\tA\tB\tC\t")
			Expect(err).To(MatchError(ContainSubstring("invalid age")))
		})

		It("rejects short records", func() {
			_, err := DecodeRecord("1\t2\t3")
			Expect(err).To(MatchError(ContainSubstring("expected at least 5 fields")))
			Expect(errors.Is(err, errMalformedRecord)).To(BeTrue())
		})

		It("round-trips through EncodeRecord", func() {
			p := profile.New(12, "x|y", 3, "a\\b", "c\td")
			p.AddHobby("h\n1")

			line := EncodeRecord(p)
			Expect(line).To(HaveSuffix("\n"))

			decoded, err := DecodeRecord(strings.TrimSuffix(line, "\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(p))
		})
	})
})
