package push_ser

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elderdiet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(conf config.Jpush, url string) *jpushClient {
	client := newJpushClient(conf)
	client.apiURL = url
	return client
}

func TestJpushClientPush(t *testing.T) {
	var captured jpushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "app-key", user)
		assert.Equal(t, "master-secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"msg_id":"424242","sendno":"1"}`))
	}))
	defer server.Close()

	conf := config.Jpush{
		AppKey:       "app-key",
		MasterSecret: "master-secret",
		Environment:  "production",
		TimeToLive:   86400,
	}
	client := newTestClient(conf, server.URL)

	msgID, err := client.Push([]string{"reg-1", "reg-2"}, "标题", "内容",
		map[string]string{"type": "reminder"}, "cid-1")
	require.NoError(t, err)
	assert.Equal(t, "424242", msgID)

	// 请求体结构符合极光 v3 协议
	assert.Equal(t, "cid-1", captured.CID)
	audience, ok := captured.Audience["registration_id"].([]interface{})
	require.True(t, ok)
	assert.Len(t, audience, 2)
	assert.Equal(t, "内容", captured.Notification.Alert)
	assert.Equal(t, "标题", captured.Notification.Android["title"])
	assert.Equal(t, "default", captured.Notification.IOS["sound"])
	assert.Equal(t, true, captured.Options["apns_production"])
	assert.Equal(t, float64(86400), captured.Options["time_to_live"])
}

func TestJpushClientPushRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":1011,"message":"cannot find user by this audience"}}`))
	}))
	defer server.Close()

	client := newTestClient(config.Jpush{AppKey: "k", MasterSecret: "s"}, server.URL)

	_, err := client.Push([]string{"reg-1"}, "标题", "内容", nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1011")
}

func TestJpushClientUnreachable(t *testing.T) {
	client := newTestClient(config.Jpush{AppKey: "k", MasterSecret: "s"}, "http://127.0.0.1:1")

	_, err := client.Push([]string{"reg-1"}, "标题", "内容", nil, "")
	require.Error(t, err)
}
