package installer_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	ippErrors "github.com/terassyi/ippmingw/internal/errors"
	"github.com/terassyi/ippmingw/internal/installer"
	"github.com/terassyi/ippmingw/internal/path"
	"github.com/terassyi/ippmingw/internal/ui"
)

var _ = Describe("Installer pipeline", func() {
	var (
		srcRoot     string
		installRoot string
		stdout      *bytes.Buffer
		recorder    *ui.Recorder
	)

	write := func(rel, content string) {
		p := filepath.Join(srcRoot, filepath.FromSlash(rel))
		Expect(os.MkdirAll(filepath.Dir(p), 0755)).To(Succeed())
		Expect(os.WriteFile(p, []byte(content), 0644)).To(Succeed())
	}

	run := func(version string, opts ...installer.InstallOption) (*installer.Result, error) {
		cfg := path.New(
			path.WithSourceRoot(srcRoot),
			path.WithVersion(version),
			path.WithInstallRoot(installRoot),
		)
		inst := installer.New(cfg, opts...)
		console := ui.NewConsoleReporter(stdout)
		inst.SetEventHandler(func(e installer.Event) {
			console.HandleEvent(e)
			recorder.HandleEvent(e)
		})
		return inst.Run(context.Background())
	}

	BeforeEach(func() {
		color.NoColor = true
		srcRoot = filepath.Join(GinkgoT().TempDir(), "ipp")
		installRoot = filepath.Join(GinkgoT().TempDir(), "IPP")
		stdout = &bytes.Buffer{}
		recorder = ui.NewRecorder()
	})

	Context("with a complete vendor tree", func() {
		BeforeEach(func() {
			write("include/x.h", "A")
			write("include/ippdefs.h", "typedef __int64 Ipp64s;\n")
			write("lib/ia32/y.lib", "B")
		})

		It("materializes the versioned tree", func() {
			By("Running the pipeline with version 9.9.9")
			_, err := run("9.9.9")
			Expect(err).NotTo(HaveOccurred())

			root := filepath.Join(installRoot, "9.9.9", "ia32")

			By("Checking the header was copied verbatim")
			Expect(filepath.Join(root, "include", "x.h")).To(BeARegularFile())
			Expect(os.ReadFile(filepath.Join(root, "include", "x.h"))).To(BeEquivalentTo("A"))

			By("Checking the library was renamed")
			Expect(os.ReadFile(filepath.Join(root, "lib", "ia32", "y.a"))).To(BeEquivalentTo("B"))
			Expect(filepath.Join(root, "lib", "ia32", "y.lib")).NotTo(BeAnExistingFile())

			By("Checking ippdefs.h was patched")
			Expect(os.ReadFile(filepath.Join(root, "include", "ippdefs.h"))).To(BeEquivalentTo("typedef long long Ipp64s;\n"))
		})

		It("prints one Copying line per file", func() {
			_, err := run("9.9.9")
			Expect(err).NotTo(HaveOccurred())

			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			Expect(lines).To(HaveLen(3))
			for _, line := range lines {
				Expect(line).To(HavePrefix("Copying "))
				Expect(line).To(ContainSubstring(" -> "))
			}
			Expect(lines[2]).To(Equal("Copying " +
				filepath.Join(srcRoot, "lib", "ia32", "y.lib") + " -> " +
				filepath.Join(installRoot, "9.9.9", "ia32", "lib", "ia32", "y.a")))
		})

		It("can be run twice over the same tree", func() {
			_, err := run("9.9.9")
			Expect(err).NotTo(HaveOccurred())

			res, err := run("9.9.9")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Created).To(BeEmpty())
			Expect(recorder.OfType(installer.EventMkdir)).To(HaveLen(2))
		})

		It("leaves the filesystem untouched in dry-run mode", func() {
			res, err := run("9.9.9", installer.WithDryRun(true))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Headers).To(Equal(2))
			Expect(installRoot).NotTo(BeAnExistingFile())
			Expect(stdout.String()).To(ContainSubstring("Copying "))
		})
	})

	Context("when the IPP installation is missing", func() {
		It("prints the not-found diagnostic before failing", func() {
			_, err := run("7.0.6")
			Expect(err).To(HaveOccurred())
			Expect(err).To(MatchError(os.ErrNotExist))

			Expect(stdout.String()).To(Equal("IPP's not found at " + srcRoot + "\n"))

			var installErr *ippErrors.InstallError
			Expect(err).To(BeAssignableToTypeOf(installErr))
			Expect(recorder.OfType(installer.EventCopy)).To(BeEmpty())
		})

		It("stops right after the diagnostic in strict mode", func() {
			_, err := run("7.0.6", installer.WithStrict(true))

			var notFound *ippErrors.SourceNotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
			Expect(stdout.String()).To(ContainSubstring("IPP's not found at " + srcRoot))

			By("Checking no destination tree was created")
			Expect(installRoot).NotTo(BeAnExistingFile())
		})
	})

	Context("when the library directory is missing", func() {
		It("fails after copying headers", func() {
			write("include/ippdefs.h", "x")

			res, err := run("7.0.6")
			Expect(err).To(MatchError(os.ErrNotExist))
			Expect(res.Headers).To(Equal(1))
			Expect(res.Libraries).To(BeZero())
			Expect(stdout.String()).NotTo(ContainSubstring("not found"))
		})
	})
})
