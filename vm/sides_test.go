package vm

import "testing"

func TestSideTableDefaults(t *testing.T) {
	st := NewSideTable()

	if st.NextSideID != 2 {
		t.Fatalf("NextSideID = %d, want 2", st.NextSideID)
	}
	if !st.IsEnemy(SidePlayer, SideEnemy) {
		t.Errorf("{0,1} should default to Enemy")
	}
	if !st.IsEnemy(SideEnemy, SidePlayer) {
		t.Errorf("{1,0} should default to Enemy (symmetric)")
	}
	if !st.IsFriend(3, 3) {
		t.Errorf("a==b should default to Friend")
	}
	if !st.IsNeutral(2, 3) {
		t.Errorf("untouched sides should default to Neutral")
	}
}

func TestSideTableCreateSide(t *testing.T) {
	st := NewSideTable()
	first := st.CreateSide()
	second := st.CreateSide()
	if first != 2 || second != 3 {
		t.Fatalf("CreateSide sequence = %d, %d; want 2, 3", first, second)
	}
}

func TestSideTableSetterSymmetrizes(t *testing.T) {
	st := NewSideTable()
	st.SetFriend(2, 3)
	if !st.IsFriend(2, 3) || !st.IsFriend(3, 2) {
		t.Errorf("SetFriend(2,3) should make the pair symmetric")
	}
}

func TestSideTablePairsRoundTrip(t *testing.T) {
	st := NewSideTable()
	st.SetEnemy(4, 5)
	st.SetFriend(6, 7)

	pairs := st.Pairs()
	st2 := NewSideTable()
	st2.SetPairs(pairs)

	if !st2.IsEnemy(4, 5) {
		t.Errorf("restored table lost Enemy(4,5)")
	}
	if !st2.IsFriend(6, 7) {
		t.Errorf("restored table lost Friend(6,7)")
	}
}
