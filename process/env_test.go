package process_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/vessel/process"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Environment", func() {
	Context("with an empty environment", func() {
		It("turns into an empty array", func() {
			env := process.Env{}
			Ω(env.Array()).Should(BeEmpty())
		})
	})

	Context("with a non empty environment", func() {
		It("converts the environment into the corresponding array", func() {
			env := process.Env{
				"HOME": "/home/alice",
				"USER": "alice",
			}
			Ω(env.Array()).Should(ConsistOf(
				"HOME=/home/alice",
				"USER=alice",
			))
		})

		It("sorts the keys into a predictable order", func() {
			envForwards := process.Env{
				"HOME": "/home/alice",
				"USER": "alice",
			}
			envBackwards := process.Env{
				"USER": "alice",
				"HOME": "/home/alice",
			}

			Ω(envForwards.Array()).Should(Equal(envBackwards.Array()))
		})
	})

	Describe("NewEnv", func() {
		It("builds an environment from key=value pairs", func() {
			env, err := process.NewEnv([]string{"HOME=/home/alice", "USER=alice"})
			Ω(err).ShouldNot(HaveOccurred())
			Ω(env).Should(Equal(process.Env{
				"HOME": "/home/alice",
				"USER": "alice",
			}))
		})

		It("keeps everything after the first equals sign in the value", func() {
			env, err := process.NewEnv([]string{"PS1=\\u=\\w"})
			Ω(err).ShouldNot(HaveOccurred())
			Ω(env["PS1"]).Should(Equal("\\u=\\w"))
		})

		Context("with an empty string", func() {
			It("returns an error", func() {
				_, err := process.NewEnv([]string{""})
				Ω(err).Should(MatchError("process: malformed environment: empty string"))
			})
		})

		Context("with an entry that is not key=value", func() {
			It("returns an error", func() {
				_, err := process.NewEnv([]string{"lol"})
				Ω(err).Should(MatchError(`process: malformed environment: invalid format (not key=value): "lol"`))
			})
		})

		Context("with an empty key", func() {
			It("returns an error", func() {
				_, err := process.NewEnv([]string{"=value"})
				Ω(err).Should(MatchError(`process: malformed environment: empty key: "=value"`))
			})
		})
	})

	Describe("merging two environments", func() {
		It("adds the new environment to the old one", func() {
			old := process.Env{
				"HOME": "/home/alice",
			}
			extra := process.Env{
				"USER": "alice",
			}

			merged := old.Merge(extra)
			Ω(merged.Array()).Should(ConsistOf(
				"HOME=/home/alice",
				"USER=alice",
			))
		})

		It("lets new values win over old ones", func() {
			old := process.Env{
				"USER": "root",
			}
			extra := process.Env{
				"USER": "alice",
			}

			merged := old.Merge(extra)
			Ω(merged.Array()).Should(ConsistOf(
				"USER=alice",
			))
		})
	})

	Describe("EnvFromFile", func() {
		var configDir string

		BeforeEach(func() {
			var err error
			configDir, err = os.MkdirTemp("", "env-config")
			Ω(err).ShouldNot(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(configDir)
		})

		It("reads key=value lines, skipping blank ones", func() {
			configPath := filepath.Join(configDir, "config")
			Ω(os.WriteFile(configPath, []byte("HOME=/home/alice\n\nUSER=alice\n"), 0644)).Should(Succeed())

			env, err := process.EnvFromFile(configPath)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(env).Should(Equal(process.Env{
				"HOME": "/home/alice",
				"USER": "alice",
			}))
		})

		Context("when the file does not exist", func() {
			It("returns an error", func() {
				_, err := process.EnvFromFile(filepath.Join(configDir, "nope"))
				Ω(err).Should(HaveOccurred())
			})
		})
	})
})
