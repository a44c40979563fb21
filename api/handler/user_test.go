package handler_test

import (
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserHandler", func() {
	var (
		env   *testEnv
		admin map[string]string
	)

	BeforeEach(func() {
		cleanDB()
		env = newTestEnv()
		_, admin = loginAs("root", true)
	})

	Describe("CreateUser", func() {
		It("creates a user without exposing the password hash", func() {
			w := doPost(env.router, "/admin/users", map[string]interface{}{
				"username": "diana",
				"password": "securepassword",
			}, admin)

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decodeJSON(w)
			Expect(resp["username"]).To(Equal("diana"))
			Expect(resp["display_name"]).To(Equal("diana"))
			Expect(resp).NotTo(HaveKey("hashed_password"))
		})

		It("returns 409 for a duplicate username", func() {
			createUser("diana", "password1!", false)

			w := doPost(env.router, "/admin/users", map[string]interface{}{
				"username": "diana",
				"password": "password1!",
			}, admin)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("rejects short passwords", func() {
			w := doPost(env.router, "/admin/users", map[string]interface{}{
				"username": "eve",
				"password": "short",
			}, admin)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("ListUsers", func() {
		It("returns users sorted by username", func() {
			createUser("zebra", "password1!", false)
			createUser("alpha", "password1!", false)

			w := doGet(env.router, "/admin/users", admin)
			Expect(w.Code).To(Equal(http.StatusOK))
			var resp []map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			// "root" from the admin session is present too.
			Expect(resp).To(HaveLen(3))
			Expect(resp[0]["username"]).To(Equal("alpha"))
			Expect(resp[1]["username"]).To(Equal("root"))
			Expect(resp[2]["username"]).To(Equal("zebra"))
		})
	})
})
