// Package history는 최근 사용한 디렉토리 prefix의 bounded FIFO 캐시다.
//
// 레코드는 오래된 것부터 저장되며, 공개 인덱스는 최신순이다 (1 = 가장 최근).
// 인덱스 0은 같은 실행에서 첫 번째 경로의 prefix를 담는 former-prefix 레지스터다.
//
// 저장소는 실행마다 하나만 선택된다: 현재 디렉토리의 .monat/history (local),
// ~/.monat/history (global), 또는 없음. 파일은 저장 시 통째로 다시 쓰인다.
// 두 셸에서 동시에 실행하면 마지막에 쓴 쪽이 이긴다. 잠금은 하지 않는다.
package history
