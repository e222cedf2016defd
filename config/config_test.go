package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"

	"wlinflate/config"
)

func writeConfigFile(content string) string {
	dir, err := os.MkdirTemp("", "wlinflate")
	Expect(err).ToNot(HaveOccurred())
	DeferCleanup(os.RemoveAll, dir)
	p := filepath.Join(dir, "wlinflate.yaml")
	Expect(os.WriteFile(p, []byte(content), 0o644)).To(Succeed())
	return p
}

var _ = Describe("Config", func() {
	Describe("GetConfig", func() {
		Describe("If only flags are given", func() {
			It("should use them", func() {
				c, err := config.GetConfig(&config.Flags{
					Wordlist:   "words.txt",
					Prepend:    "test1,test2",
					Extensions: ".txt",
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Wordlist).To(Equal("words.txt"))
				Expect(c.Prepend).To(Equal("test1,test2"))
				Expect(c.Append).To(BeEmpty())
				Expect(c.Extensions).To(Equal(".txt"))
				Expect(c.Verbose).To(BeFalse())
				Expect(c.Log.GetLevel()).To(Equal(log.InfoLevel))

				set := c.Transformations()
				Expect(set.Prepend).To(Equal([]string{"test1", "test2"}))
				Expect(set.Append).To(BeEmpty())
				Expect(set.Extensions).To(Equal([]string{".txt"}))
			})
		})

		Describe("If the wordlist is missing", func() {
			It("should return an error", func() {
				c, err := config.GetConfig(nil)
				Expect(c).To(BeNil())
				Expect(err).To(MatchError(ContainSubstring("wordlist can't be empty")))
			})
		})

		Describe("If a config file is given", func() {
			It("should read lists and strings from it", func() {
				p := writeConfigFile("wordlist: words.txt\nprepend: [a, b]\nswap: dev,prod\nverbose: true\n")
				c, err := config.GetConfig(&config.Flags{ConfigFile: p})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Wordlist).To(Equal("words.txt"))
				Expect(c.Prepend).To(Equal("a,b"))
				Expect(c.Swap).To(Equal("dev,prod"))
				Expect(c.Verbose).To(BeTrue())
				Expect(c.Log.GetLevel()).To(Equal(log.DebugLevel))
			})

			It("should let flags override it", func() {
				p := writeConfigFile("wordlist: words.txt\nswap: dev,prod\n")
				c, err := config.GetConfig(&config.Flags{ConfigFile: p, Swap: "qa", Output: "out.txt"})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Swap).To(Equal("qa"))
				Expect(c.Output).To(Equal("out.txt"))
			})
		})

		Describe("If the config file can't be read", func() {
			It("should return an error", func() {
				_, err := config.GetConfig(&config.Flags{ConfigFile: filepath.Join(os.TempDir(), "wlinflate-missing.yaml")})
				Expect(err).To(MatchError(ContainSubstring("error when reading config file")))
			})
		})

		Describe("If environment variables are set", func() {
			BeforeEach(func() {
				os.Setenv("WLINFLATE_WORDLIST", "env.txt")
				os.Setenv("WLINFLATE_APPEND", "1,2")
				DeferCleanup(os.Unsetenv, "WLINFLATE_WORDLIST")
				DeferCleanup(os.Unsetenv, "WLINFLATE_APPEND")
			})

			It("should read them", func() {
				c, err := config.GetConfig(&config.Flags{})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Wordlist).To(Equal("env.txt"))
				Expect(c.Append).To(Equal("1,2"))
			})

			It("should let flags override them", func() {
				c, err := config.GetConfig(&config.Flags{Wordlist: "flag.txt"})
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Wordlist).To(Equal("flag.txt"))
			})
		})
	})
})
