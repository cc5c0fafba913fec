package push_ser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"elderdiet/config"
)

const jpushAPIURL = "https://api.jpush.cn/v3/push"

// Gateway 推送网关，单次调用只有整体成败，没有按设备的结果
type Gateway interface {
	Push(registrationIDs []string, title, content string, extras map[string]string, cid string) (string, error)
}

// jpushClient 极光推送 REST API v3 客户端
type jpushClient struct {
	conf   config.Jpush
	apiURL string
	client *http.Client
}

func newJpushClient(conf config.Jpush) *jpushClient {
	return &jpushClient{
		conf:   conf,
		apiURL: jpushAPIURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// jpushNotification 通知内容
type jpushNotification struct {
	Alert   string         `json:"alert"`
	Android map[string]any `json:"android,omitempty"`
	IOS     map[string]any `json:"ios,omitempty"`
}

// jpushRequest 推送请求体
type jpushRequest struct {
	CID          string            `json:"cid,omitempty"`
	Platform     any               `json:"platform"`
	Audience     map[string]any    `json:"audience"`
	Notification jpushNotification `json:"notification"`
	Message      map[string]any    `json:"message"`
	Options      map[string]any    `json:"options"`
}

// jpushResponse 推送响应体
type jpushResponse struct {
	MsgID  string `json:"msg_id"`
	SendNo string `json:"sendno"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Push 发送一次推送，返回极光消息ID
func (j *jpushClient) Push(registrationIDs []string, title, content string, extras map[string]string, cid string) (string, error) {
	if extras == nil {
		extras = map[string]string{}
	}
	reqBody := jpushRequest{
		CID:      cid,
		Platform: []string{"android", "ios"},
		Audience: map[string]any{
			"registration_id": registrationIDs,
		},
		Notification: jpushNotification{
			Alert: content,
			Android: map[string]any{
				"title":  title,
				"alert":  content,
				"extras": extras,
			},
			IOS: map[string]any{
				"alert":  content,
				"sound":  "default",
				"badge":  1,
				"extras": extras,
			},
		},
		Message: map[string]any{
			"msg_content": content,
		},
		Options: map[string]any{
			"apns_production": j.conf.IsProduction(),
			"time_to_live":    j.conf.TimeToLive,
		},
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("序列化推送请求失败: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, j.apiURL, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("创建推送请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(j.conf.AppKey, j.conf.MasterSecret)

	resp, err := j.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("调用极光接口失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取极光响应失败: %w", err)
	}

	var result jpushResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("解析极光响应失败: %w, body: %s", err, string(body))
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil {
			return "", fmt.Errorf("极光拒绝推送: code=%d, message=%s", result.Error.Code, result.Error.Message)
		}
		return "", fmt.Errorf("极光返回异常状态码: %d, body: %s", resp.StatusCode, string(body))
	}

	return result.MsgID, nil
}
