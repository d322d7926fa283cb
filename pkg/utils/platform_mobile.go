//go:build mobile

package utils

// ebitenmobile 绑定构建
const mobileBuild = true
