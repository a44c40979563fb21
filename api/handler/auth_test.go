package handler_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AuthHandler", func() {
	var env *testEnv

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
	})

	Describe("Login", func() {
		It("returns a usable session token for valid credentials", func() {
			createUser("reader", "password1!", false)

			w := doPost(env.router, "/auth/login", map[string]interface{}{
				"username": "reader",
				"password": "password1!",
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decodeJSON(w)
			token, _ := resp["token"].(string)
			Expect(token).NotTo(BeEmpty())
			user, _ := resp["user"].(map[string]interface{})
			Expect(user["username"]).To(Equal("reader"))
			Expect(user).NotTo(HaveKey("hashed_password"))

			// The token authenticates a protected route.
			b := createBook("Token Check", "token-check", bookOpts{free: true})
			createPage(b, 1, 1, "text")
			r := doGet(env.router, pagePath(b.ID, 1), map[string]string{"X-Api-Token": token})
			Expect(r.Code).To(Equal(http.StatusOK))
		})

		It("rejects a wrong password", func() {
			createUser("reader", "password1!", false)

			w := doPost(env.router, "/auth/login", map[string]interface{}{
				"username": "reader",
				"password": "wrong",
			})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects an unknown user", func() {
			w := doPost(env.router, "/auth/login", map[string]interface{}{
				"username": "ghost",
				"password": "password1!",
			})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a missing password field", func() {
			w := doPost(env.router, "/auth/login", map[string]interface{}{
				"username": "reader",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Logout", func() {
		It("deletes the session so the token stops working", func() {
			u, headers := loginAs("leaver", false)

			w := doPost(env.router, "/auth/logout", nil, headers)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			count, err := u.QuerySessions().Count(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			b := createBook("Gone", "gone", bookOpts{free: true})
			createPage(b, 1, 1, "text")
			r := doGet(env.router, pagePath(b.ID, 1), headers)
			Expect(r.Code).To(Equal(http.StatusUnauthorized))
		})

		It("requires a session", func() {
			w := doPost(env.router, "/auth/logout", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
