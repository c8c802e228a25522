package integration

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/honeybbq/bitcoinconf/pkg/bitcoinconf"
)

// bundleToText 返回入口文件内容（用于测试对比）
func bundleToText(bundle *bitcoinconf.Bundle) string {
	if len(bundle.Packages) > 0 {
		return string(bundle.Packages[0].Content)
	}
	return ""
}

// normalizeConfig 标准化配置文本用于比较
// 1. 去除首尾空白
// 2. 统一换行符
// 3. 移除空行差异
func normalizeConfig(text string) string {
	// 去除首尾空白
	text = strings.TrimSpace(text)
	// 统一换行符为 \n
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return text
}

// compareConfigs 智能比较配置内容，忽略不重要的空白差异
func compareConfigs(got, want string) bool {
	return normalizeConfig(got) == normalizeConfig(want)
}

// formatConfigDiff 格式化配置差异信息
func formatConfigDiff(got, want string) string {
	gotNorm := normalizeConfig(got)
	wantNorm := normalizeConfig(want)

	if gotNorm == wantNorm {
		return "configs match (after normalization)"
	}

	gotLines := strings.Split(gotNorm, "\n")
	wantLines := strings.Split(wantNorm, "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "config mismatch (got %d lines, want %d lines)\n", len(gotLines), len(wantLines))
	fmt.Fprintf(&b, "--- got (normalized) ---\n%s\n", gotNorm)
	fmt.Fprintf(&b, "--- want (normalized) ---\n%s\n", wantNorm)

	// 逐行比较找出差异
	maxLines := len(gotLines)
	if len(wantLines) > maxLines {
		maxLines = len(wantLines)
	}

	fmt.Fprintf(&b, "--- line-by-line diff ---\n")
	for i := 0; i < maxLines; i++ {
		var gotLine, wantLine string
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}

		if gotLine != wantLine {
			fmt.Fprintf(&b, "Line %d differs:\n", i+1)
			fmt.Fprintf(&b, "  got:  %q\n", gotLine)
			fmt.Fprintf(&b, "  want: %q\n", wantLine)
		}
	}

	return b.String()
}

// jsonEqual 比较两个 JSON 文档是否语义相同
func jsonEqual(t *testing.T, a, b []byte) bool {
	t.Helper()
	var left, right any
	if err := json.Unmarshal(a, &left); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if err := json.Unmarshal(b, &right); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	return reflect.DeepEqual(left, right)
}
