package llm_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/craftui/chatpayload/pkg/llm"
)

var _ = Describe("NewTextMessage", func() {
	It("sets the id and role as given", func() {
		msg := llm.NewTextMessage("msg-42", "user", "hi there")

		Expect(msg.ID).To(Equal("msg-42"))
		Expect(msg.Role).To(Equal("user"))
	})

	It("carries exactly one text part", func() {
		msg := llm.NewTextMessage("msg-1", "user", "hi there")

		Expect(msg.Parts).To(HaveLen(1))
		Expect(msg.Parts[0].Type).To(Equal("text"))
	})

	It("mirrors the text into both content and the part", func() {
		msg := llm.NewTextMessage("msg-1", "assistant", "same words")

		Expect(msg.Content).To(Equal("same words"))
		Expect(msg.Parts[0].Text).To(Equal(msg.Content))
	})
})

var _ = Describe("ChatRequest", func() {
	It("serializes projectId in camelCase", func() {
		req := llm.ChatRequest{
			Messages:  []llm.Message{llm.NewTextMessage("m1", "user", "hello")},
			Model:     "anthropic",
			ProjectID: "proj-7",
		}

		body, err := json.Marshal(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring(`"projectId":"proj-7"`))
	})
})
