// AngelaMos | 2026
// catalog.go

package i18n

// catalogs hold the non-English message catalogs, keyed by the English text.
// Keep every key in sync across locales when adding messages.
var catalogs = map[string]map[string]string{
	"ko": {
		"You do not have permission to make this request.":                 "이 요청을 수행할 권한이 없습니다.",
		"One or more request arguments are invalid.":                       "하나 이상의 요청 인수가 잘못되었습니다.",
		"Login failed. Email and/or password is incorrect.":                "로그인에 실패했습니다. 이메일 또는 비밀번호가 올바르지 않습니다.",
		"An account with this email already exists, please try again email.": "이 이메일로 등록된 계정이 이미 존재합니다. 다른 이메일을 사용해 주세요.",
		"Login failed. Account is inactive.":                               "로그인에 실패했습니다. 비활성화된 계정입니다.",
		"Login failed. Account has been deleted.":                          "로그인에 실패했습니다. 삭제된 계정입니다.",
		"Account does not exist.":                                          "계정이 존재하지 않습니다.",
		"Record does not exist.":                                           "기록이 존재하지 않습니다.",
		"Invalid password reset token or reset token has expired.":         "비밀번호 재설정 토큰이 잘못되었거나 만료되었습니다.",
		"Invalid login confirmation token or token has expired.":           "로그인 확인 토큰이 잘못되었거나 만료되었습니다.",
		"The passwords you entered do not match.":                          "입력한 비밀번호가 일치하지 않습니다.",
		"Password length must be 8 characters or greater.":                 "비밀번호는 8자 이상이어야 합니다.",
		"Password cannot contain white spaces.":                            "비밀번호에 공백을 포함할 수 없습니다.",
		"Time zone is invalid.":                                            "시간대가 잘못되었습니다.",
		"You must agree to Terms of Service.":                              "서비스 약관에 동의해야 합니다.",
		"New email cannot be the same as the current email.":               "새 이메일은 현재 이메일과 같을 수 없습니다.",
		"The new email is already being used.":                             "새 이메일은 이미 사용 중입니다.",
		"Original password is incorrect, please try again.":                "기존 비밀번호가 올바르지 않습니다. 다시 시도해 주세요.",
		"An unexpected error has occurred.":                                "예기치 않은 오류가 발생했습니다.",
		"Server is in the process of shutting down or restarting.":         "서버가 종료 또는 재시작 중입니다.",
	},
	"zh-CN": {
		"You do not have permission to make this request.":                 "您没有权限执行此请求。",
		"One or more request arguments are invalid.":                       "一个或多个请求参数无效。",
		"Login failed. Email and/or password is incorrect.":                "登录失败。邮箱或密码不正确。",
		"An account with this email already exists, please try again email.": "该邮箱已注册账户，请使用其他邮箱。",
		"Login failed. Account is inactive.":                               "登录失败。账户未激活。",
		"Login failed. Account has been deleted.":                          "登录失败。账户已被删除。",
		"Account does not exist.":                                          "账户不存在。",
		"Record does not exist.":                                           "记录不存在。",
		"Invalid password reset token or reset token has expired.":         "密码重置令牌无效或已过期。",
		"Invalid login confirmation token or token has expired.":           "登录确认令牌无效或已过期。",
		"The passwords you entered do not match.":                          "您输入的两次密码不一致。",
		"Password length must be 8 characters or greater.":                 "密码长度必须至少为 8 个字符。",
		"Password cannot contain white spaces.":                            "密码不能包含空格。",
		"Time zone is invalid.":                                            "时区无效。",
		"You must agree to Terms of Service.":                              "您必须同意服务条款。",
		"New email cannot be the same as the current email.":               "新邮箱不能与当前邮箱相同。",
		"The new email is already being used.":                             "新邮箱已被使用。",
		"Original password is incorrect, please try again.":                "原密码不正确，请重试。",
		"An unexpected error has occurred.":                                "发生了意外错误。",
		"Server is in the process of shutting down or restarting.":         "服务器正在关闭或重启。",
	},
	"zh-TW": {
		"You do not have permission to make this request.":                 "您沒有權限執行此請求。",
		"One or more request arguments are invalid.":                       "一個或多個請求參數無效。",
		"Login failed. Email and/or password is incorrect.":                "登入失敗。電子郵件或密碼不正確。",
		"An account with this email already exists, please try again email.": "該電子郵件已註冊帳戶，請使用其他電子郵件。",
		"Login failed. Account is inactive.":                               "登入失敗。帳戶未啟用。",
		"Login failed. Account has been deleted.":                          "登入失敗。帳戶已被刪除。",
		"Account does not exist.":                                          "帳戶不存在。",
		"Record does not exist.":                                           "記錄不存在。",
		"Invalid password reset token or reset token has expired.":         "密碼重設權杖無效或已過期。",
		"Invalid login confirmation token or token has expired.":           "登入確認權杖無效或已過期。",
		"The passwords you entered do not match.":                          "您輸入的兩次密碼不一致。",
		"Password length must be 8 characters or greater.":                 "密碼長度必須至少為 8 個字元。",
		"Password cannot contain white spaces.":                            "密碼不能包含空格。",
		"Time zone is invalid.":                                            "時區無效。",
		"You must agree to Terms of Service.":                              "您必須同意服務條款。",
		"New email cannot be the same as the current email.":               "新電子郵件不能與目前電子郵件相同。",
		"The new email is already being used.":                             "新電子郵件已被使用。",
		"Original password is incorrect, please try again.":                "原密碼不正確，請重試。",
		"An unexpected error has occurred.":                                "發生了意外錯誤。",
		"Server is in the process of shutting down or restarting.":         "伺服器正在關閉或重新啟動。",
	},
}
