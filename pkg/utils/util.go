package utils

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// TimestampLayout はファイル名に付与するタイムスタンプの書式です（秒精度）。
const TimestampLayout = "20060102_150405"

// SanitizeSurveyName は、英数字・空白・ハイフン・アンダースコア以外を取り除き、
// 末尾の空白を削ってから空白をアンダースコアに置き換えます。
func SanitizeSurveyName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(strings.TrimRight(b.String(), " "), " ", "_")
}

// BuildFilename は {prefix}_{sanitizedName}_{timestamp}.png 形式のファイル名を作ります。
func BuildFilename(prefix, surveyName string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.png", prefix, SanitizeSurveyName(surveyName), now.Format(TimestampLayout))
}

// IsSafeURL は、SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、プライベートIPやループバックアドレスを
// ターゲットにしていないことを確認します。
func IsSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolved, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolved
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
